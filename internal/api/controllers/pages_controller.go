package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PagesController struct {
	page []byte
}

func NewPagesController(defaultLocation string) (*PagesController, error) {
	tpl := template.Must(template.New("planner").Parse(plannerPageTemplate))

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]string{"DefaultLocation": defaultLocation}); err != nil {
		return nil, err
	}
	return &PagesController{page: buf.Bytes()}, nil
}

// Index godoc
// @Summary Planner UI
// @Description Serve the single-page itinerary planner
// @Tags Pages
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (p *PagesController) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.page)
}

const plannerPageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Huakai Trip Planner</title>
<style>
  :root { color-scheme: dark; }
  * { box-sizing: border-box; }
  body {
    margin: 0;
    background: linear-gradient(135deg, #0c4a6e 0%, #0f172a 100%);
    min-height: 100vh;
    color: #e2e8f0;
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  }
  header {
    padding: 28px 24px 12px;
    text-align: center;
  }
  .brand {
    font-size: 28px;
    font-weight: 700;
    letter-spacing: 2px;
    text-transform: uppercase;
    color: #38bdf8;
  }
  .tagline { color: #94a3b8; margin-top: 4px; font-size: 14px; }
  main { max-width: 760px; margin: 0 auto; padding: 16px 20px 60px; }
  section {
    background: rgba(15, 23, 42, 0.85);
    border: 1px solid rgba(148, 163, 184, 0.15);
    border-radius: 14px;
    padding: 22px;
    margin-top: 18px;
  }
  h2 { margin: 0 0 14px; font-size: 17px; color: #f1f5f9; }
  label { display: block; font-size: 13px; color: #94a3b8; margin: 10px 0 4px; }
  input, select, textarea {
    width: 100%;
    padding: 10px 12px;
    border-radius: 8px;
    border: 1px solid rgba(148, 163, 184, 0.25);
    background: #1e293b;
    color: #e2e8f0;
    font-size: 14px;
  }
  textarea { min-height: 64px; resize: vertical; }
  .row { display: flex; gap: 12px; }
  .row > div { flex: 1; }
  .check { display: flex; align-items: center; gap: 8px; margin-top: 12px; }
  .check input { width: auto; }
  .check label { margin: 0; }
  button {
    margin-top: 16px;
    padding: 11px 20px;
    border: 0;
    border-radius: 9px;
    background: #0284c7;
    color: #fff;
    font-size: 14px;
    font-weight: 600;
    cursor: pointer;
  }
  button:hover { background: #0369a1; }
  button:disabled { background: #475569; cursor: wait; }
  button.ghost { background: transparent; border: 1px solid rgba(148, 163, 184, 0.35); color: #cbd5e1; }
  .notice { margin-top: 12px; padding: 10px 14px; border-radius: 8px; font-size: 14px; display: none; }
  .notice.error { display: block; background: rgba(239, 68, 68, 0.12); border: 1px solid rgba(239, 68, 68, 0.4); color: #fca5a5; }
  .notice.warn { display: block; background: rgba(234, 179, 8, 0.1); border: 1px solid rgba(234, 179, 8, 0.35); color: #fde047; }
  .day {
    background: rgba(56, 189, 248, 0.06);
    border: 1px solid rgba(56, 189, 248, 0.2);
    border-radius: 10px;
    padding: 14px 16px;
    margin-top: 12px;
  }
  .day h3 { margin: 0 0 6px; font-size: 15px; color: #7dd3fc; }
  .day p { margin: 0; font-size: 14px; line-height: 1.65; white-space: pre-wrap; }
  pre {
    background: #0b1220;
    border: 1px solid rgba(148, 163, 184, 0.2);
    border-radius: 10px;
    padding: 16px;
    white-space: pre-wrap;
    word-break: break-word;
    font-size: 13px;
    line-height: 1.6;
  }
  ul.searches { padding-left: 18px; margin: 8px 0 0; }
  ul.searches li { margin: 6px 0; font-size: 14px; }
  a { color: #7dd3fc; }
  .actions { display: flex; flex-wrap: wrap; gap: 10px; align-items: center; }
  .actions button { margin-top: 0; }
  .actions input { max-width: 240px; }
  .muted { color: #64748b; font-size: 13px; }
  @media (max-width: 560px) { .row { flex-direction: column; } }
</style>
</head>
<body>
<header>
  <div class="brand">Huakai</div>
  <div class="tagline">Tell us about your trip and we will plan every day of it.</div>
</header>
<main>
  <section id="setup">
    <h2>1. Where and when</h2>
    <label for="location">Destination</label>
    <input id="location" value="{{.DefaultLocation}}">
    <div class="row">
      <div>
        <label for="start">Start date</label>
        <input id="start" type="date">
      </div>
      <div>
        <label for="end">End date</label>
        <input id="end" type="date">
      </div>
    </div>
    <div class="row">
      <div>
        <label for="format">Itinerary style</label>
        <select id="format">
          <option value="json">Structured, day by day</option>
          <option value="text">Narrative text</option>
        </select>
      </div>
      <div class="check">
        <input id="research" type="checkbox" checked>
        <label for="research">Research the destination with live web search</label>
      </div>
    </div>
    <button id="begin">Start planning</button>
    <div id="setup-notice" class="notice"></div>
  </section>

  <section id="interview" hidden>
    <h2>2. A few questions</h2>
    <div id="questions"></div>
    <button id="generate">Generate itinerary</button>
    <div id="interview-notice" class="notice"></div>
  </section>

  <section id="result" hidden>
    <h2 id="result-title">3. Your itinerary</h2>
    <div id="itinerary"></div>
    <div id="suggestions"></div>
    <div class="actions" style="margin-top:18px">
      <button id="dl-txt" class="ghost">Download .txt</button>
      <button id="dl-pdf" class="ghost">Download .pdf</button>
      <a id="mailto" href="#" hidden>Open in your mail app</a>
    </div>
    <div class="actions" style="margin-top:12px">
      <input id="email-to" type="email" placeholder="traveler@example.com">
      <button id="email-send" class="ghost">Email it to me</button>
      <span id="email-status" class="muted"></span>
    </div>
    <div id="result-notice" class="notice"></div>
  </section>
</main>
<script>
(function () {
  "use strict";

  var plan = null;

  function $(id) { return document.getElementById(id); }
  function api(path) { return "/api/v1" + path; }

  function isoDate(d) { return d.toISOString().slice(0, 10); }

  function notice(id, kind, text) {
    var el = $(id);
    el.className = "notice" + (kind ? " " + kind : "");
    el.textContent = text || "";
  }

  function init() {
    var today = new Date();
    var week = new Date(today.getTime() + 7 * 24 * 3600 * 1000);
    $("start").value = isoDate(today);
    $("end").value = isoDate(week);

    $("begin").addEventListener("click", loadQuestions);
    $("generate").addEventListener("click", generatePlan);
    $("dl-txt").addEventListener("click", function () { download("txt"); });
    $("dl-pdf").addEventListener("click", function () { download("pdf"); });
    $("email-send").addEventListener("click", emailPlan);
  }

  function request(method, path, body) {
    var opts = { method: method, headers: { "Content-Type": "application/json" } };
    if (body) { opts.body = JSON.stringify(body); }
    return fetch(api(path), opts).then(function (res) {
      return res.json().then(function (payload) {
        if (!res.ok) { throw new Error(payload.message || ("Request failed with status " + res.status)); }
        return payload;
      });
    });
  }

  function loadQuestions() {
    var location = $("location").value.trim();
    if ($("start").value > $("end").value) {
      notice("setup-notice", "error", "Start date must be before end date.");
      return;
    }
    notice("setup-notice", "", "");
    $("begin").disabled = true;

    request("GET", "/questions?location=" + encodeURIComponent(location))
      .then(function (payload) {
        renderQuestions(payload.data.questions);
        $("interview").hidden = false;
        $("interview").scrollIntoView({ behavior: "smooth" });
      })
      .catch(function (err) { notice("setup-notice", "error", err.message); })
      .then(function () { $("begin").disabled = false; });
  }

  function renderQuestions(questions) {
    var host = $("questions");
    host.innerHTML = "";
    questions.forEach(function (q, i) {
      var label = document.createElement("label");
      label.textContent = q;
      label.setAttribute("for", "answer-" + i);
      var area = document.createElement("textarea");
      area.id = "answer-" + i;
      area.dataset.question = q;
      host.appendChild(label);
      host.appendChild(area);
    });
  }

  function collectAnswers() {
    var answers = [];
    var areas = $("questions").querySelectorAll("textarea");
    areas.forEach(function (area) {
      if (area.value.trim()) {
        answers.push({ question: area.dataset.question, answer: area.value.trim() });
      }
    });
    return answers;
  }

  function generatePlan() {
    var answers = collectAnswers();
    if (answers.length === 0) {
      notice("interview-notice", "error", "Answer at least one question first.");
      return;
    }
    notice("interview-notice", "", "");
    var btn = $("generate");
    btn.disabled = true;
    btn.textContent = "Planning your trip...";

    request("POST", "/plans", {
      location: $("location").value.trim(),
      start_date: $("start").value,
      end_date: $("end").value,
      answers: answers,
      format: $("format").value,
      include_search: $("research").checked
    })
      .then(function (payload) {
        plan = payload.data;
        renderPlan(payload.message);
        $("result").hidden = false;
        $("result").scrollIntoView({ behavior: "smooth" });
      })
      .catch(function (err) { notice("interview-notice", "error", err.message); })
      .then(function () {
        btn.disabled = false;
        btn.textContent = "Generate itinerary";
      });
  }

  function planText() {
    if (!plan) { return ""; }
    if (plan.itinerary && plan.itinerary.itinerary) {
      var parts = [];
      Object.keys(plan.itinerary.itinerary).forEach(function (day) {
        parts.push(day + "\n" + plan.itinerary.itinerary[day]);
      });
      return parts.join("\n\n");
    }
    return plan.itinerary_text || plan.raw_response || "";
  }

  function renderPlan(message) {
    var host = $("itinerary");
    host.innerHTML = "";
    notice("result-notice", "", "");

    if (plan.parse_failed) {
      notice("result-notice", "warn", message);
      var raw = document.createElement("pre");
      raw.textContent = plan.raw_response;
      host.appendChild(raw);
    } else if (plan.itinerary && plan.itinerary.itinerary) {
      Object.keys(plan.itinerary.itinerary).forEach(function (day) {
        var card = document.createElement("div");
        card.className = "day";
        var h = document.createElement("h3");
        h.textContent = day;
        var p = document.createElement("p");
        p.textContent = plan.itinerary.itinerary[day];
        card.appendChild(h);
        card.appendChild(p);
        host.appendChild(card);
      });
    } else {
      var pre = document.createElement("pre");
      pre.textContent = plan.itinerary_text;
      host.appendChild(pre);
    }

    renderSuggestions();

    var mailto = $("mailto");
    if (plan.mailto) {
      mailto.href = plan.mailto;
      mailto.hidden = false;
    } else {
      mailto.hidden = true;
    }
  }

  function renderSuggestions() {
    var host = $("suggestions");
    host.innerHTML = "";
    if (!plan.suggested_searches || plan.suggested_searches.length === 0) { return; }

    var title = document.createElement("h2");
    title.textContent = "Keep exploring";
    title.style.marginTop = "20px";
    host.appendChild(title);

    var list = document.createElement("ul");
    list.className = "searches";
    plan.suggested_searches.forEach(function (s) {
      var li = document.createElement("li");
      var a = document.createElement("a");
      a.href = s.url;
      a.target = "_blank";
      a.rel = "noopener";
      a.textContent = s.category + ": " + s.query;
      li.appendChild(a);
      list.appendChild(li);
    });
    host.appendChild(list);
  }

  function download(format) {
    if (!plan) { return; }
    fetch(api("/plans/export/download"), {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({
        location: plan.location,
        start_date: plan.start_date,
        end_date: plan.end_date,
        itinerary: planText(),
        format: format
      })
    })
      .then(function (res) {
        if (!res.ok) { throw new Error("Download failed with status " + res.status); }
        var disposition = res.headers.get("Content-Disposition") || "";
        var match = disposition.match(/filename="?([^";]+)"?/);
        return res.blob().then(function (blob) {
          var a = document.createElement("a");
          a.href = URL.createObjectURL(blob);
          a.download = match ? match[1] : "itinerary." + format;
          a.click();
          URL.revokeObjectURL(a.href);
        });
      })
      .catch(function (err) { notice("result-notice", "error", err.message); });
  }

  function emailPlan() {
    if (!plan) { return; }
    var to = $("email-to").value.trim();
    if (!to) {
      notice("result-notice", "error", "Enter an email address first.");
      return;
    }
    $("email-status").textContent = "Sending...";

    request("POST", "/plans/export/email", {
      to: to,
      location: plan.location,
      start_date: plan.start_date,
      end_date: plan.end_date,
      itinerary: planText()
    })
      .then(function () { $("email-status").textContent = "Sent!"; })
      .catch(function (err) {
        $("email-status").textContent = "";
        notice("result-notice", "error", err.message);
      });
  }

  init();
})();
</script>
</body>
</html>`
