package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"huakai/pkg/utils"
)

const (
	ExportTXT = "txt"
	ExportPDF = "pdf"
)

// ExportServiceInterface renders an itinerary into a downloadable document.
type ExportServiceInterface interface {
	Render(format, location, dateRange, itinerary string) (data []byte, contentType, filename string, err error)
}

type exportService struct{}

func NewExportService() ExportServiceInterface {
	return &exportService{}
}

func (s *exportService) Render(format, location, dateRange, itinerary string) ([]byte, string, string, error) {
	itinerary = strings.TrimSpace(itinerary)
	if itinerary == "" {
		return nil, "", "", utils.ErrEmptyItinerary
	}

	switch format {
	case "", ExportTXT:
		data := renderText(location, dateRange, itinerary)
		return data, "text/plain; charset=utf-8", exportFilename(location, ExportTXT), nil
	case ExportPDF:
		data, err := renderPDF(location, dateRange, itinerary)
		if err != nil {
			return nil, "", "", err
		}
		return data, "application/pdf", exportFilename(location, ExportPDF), nil
	default:
		return nil, "", "", utils.ErrUnsupportedExportFormat
	}
}

func renderText(location, dateRange, itinerary string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s Itinerary\n", location)
	fmt.Fprintf(&b, "%s\n\n", dateRange)
	b.WriteString(itinerary)
	b.WriteString("\n")
	return b.Bytes()
}

func renderPDF(location, dateRange, itinerary string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s Itinerary", location)), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(dateRange), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(itinerary, "\n") {
		pdf.MultiCell(0, 5.5, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func exportFilename(location, ext string) string {
	slug := strings.ToLower(strings.TrimSpace(location))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_' || r == ',':
			return '-'
		default:
			return -1
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "trip"
	}
	return fmt.Sprintf("%s-itinerary.%s", slug, ext)
}
