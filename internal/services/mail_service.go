// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"huakai/pkg/utils"
)

type IMailService interface {
	// SendItinerary mails the rendered itinerary to the traveler.
	SendItinerary(to, location, dateRange, itinerary string) error

	// Configured reports whether SMTP delivery can be attempted at all.
	Configured() bool
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string // SMTP username / login
	Password   string // SMTP password / app password
	From       string // envelope from, e.g. "no-reply@yourapp.com"
	FromName   string // display name, e.g. "Your App"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName string // used in footer, header
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("itineraryHTML").Parse(itineraryHTMLTemplate))
	textTpl := template.Must(template.New("itineraryText").Parse(itineraryTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) Configured() bool {
	return s.cfg.Host != "" && s.cfg.From != ""
}

func (s *smtpMailService) SendItinerary(to, location, dateRange, itinerary string) error {
	if !s.Configured() {
		return utils.ErrMailNotConfigured
	}

	subject := fmt.Sprintf("Your %s itinerary (%s)", location, dateRange)
	html, text, err := s.renderEmail(EmailData{
		Title:   subject,
		Intro:   fmt.Sprintf("Here is the trip plan you put together for %s, %s.", location, dateRange),
		Body:    itinerary,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMailDeliveryFailed, err)
	}

	if err := s.send(to, subject, html, text); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMailDeliveryFailed, err)
	}
	return nil
}

// MailtoLink builds a mailto: URL so travelers can send the plan from their
// own mail client when SMTP is not set up.
func MailtoLink(location, dateRange, itinerary string) string {
	subject := fmt.Sprintf("Your %s itinerary (%s)", location, dateRange)
	return "mailto:?subject=" + mailtoEscape(subject) + "&body=" + mailtoEscape(itinerary)
}

// mailto links need %20 for spaces, not the + form-encoding uses.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ------------------- Rendering -------------------

type EmailData struct {
	Title   string
	Intro   string
	Body    string
	AppName string
	Year    int
}

const itineraryHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      padding: 0;
      background: linear-gradient(135deg, #0c4a6e 0%, #075985 100%);
      color: #ffffff;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    }
    .wrapper {
      width: 100%;
      padding: 40px 16px;
      box-sizing: border-box;
    }
    .container {
      width: 100%;
      max-width: 640px;
      margin: 0 auto;
      background: #0f172a;
      border-radius: 16px;
      overflow: hidden;
      box-shadow: 0 20px 60px rgba(0, 0, 0, 0.5), 0 0 0 1px rgba(255, 255, 255, 0.06);
    }
    .header {
      padding: 28px 32px 20px;
      border-bottom: 1px solid rgba(148, 163, 184, 0.1);
    }
    .brand {
      font-weight: 700;
      letter-spacing: 0.5px;
      font-size: 22px;
      color: #38bdf8;
      text-transform: uppercase;
    }
    .hero {
      padding: 32px;
    }
    h1 {
      margin: 0 0 16px;
      font-size: 24px;
      font-weight: 700;
      color: #f1f5f9;
      line-height: 1.3;
    }
    p {
      margin: 0 0 20px;
      line-height: 1.7;
      color: #cbd5e1;
      font-size: 16px;
    }
    .itinerary {
      background: rgba(148, 163, 184, 0.08);
      border: 1px solid rgba(148, 163, 184, 0.15);
      border-radius: 8px;
      padding: 20px;
      color: #e2e8f0;
      font-size: 14px;
      line-height: 1.7;
      white-space: pre-wrap;
      word-break: break-word;
    }
    .footer {
      padding: 20px 32px;
      color: #64748b;
      font-size: 13px;
      text-align: center;
      border-top: 1px solid rgba(148, 163, 184, 0.1);
    }
    @media (max-width: 600px) {
      .wrapper { padding: 24px 12px; }
      .hero { padding: 24px 20px; }
      h1 { font-size: 21px; }
    }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <div class="brand">{{.AppName}}</div>
      </div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        <div class="itinerary">{{.Body}}</div>
      </div>
      <div class="footer">
        © {{.Year}} {{.AppName}}. Safe travels!
      </div>
    </div>
  </div>
</body>
</html>`

const itineraryTextTemplate = `{{.Title}}

{{.Intro}}

{{.Body}}

--
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	// Plaintext part
	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	// HTML part
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	// End
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.transmit(c, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	// Upgrade to TLS if supported
	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.transmit(c, to, msg.Bytes())
}

// transmit runs the envelope exchange on an established client.
func (s *smtpMailService) transmit(c *smtp.Client, to string, msg []byte) error {
	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// Basic RFC 2047 compliant encoding for non-ASCII display names.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
