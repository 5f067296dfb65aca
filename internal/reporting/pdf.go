package reporting

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/digimosa/exposure-scan/internal/models"
)

// levelColor keys the risk block fill to the severity bucket
func levelColor(level models.RiskLevel) (r, g, b int) {
	switch level {
	case models.RiskCritical:
		return 220, 53, 69 // red
	case models.RiskHigh:
		return 253, 126, 20 // orange
	case models.RiskMedium:
		return 255, 193, 7 // yellow
	default:
		return 40, 167, 69 // green
	}
}

// PDF renders a single scan record into a paginated exposure report.
// Absent optional fields (gps, avatar) render as "None detected" or are
// omitted; the renderer never fails on them.
func PDF(scan *models.Scan) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Social Exposure Report", false)
	pdf.AddPage()

	// Core fonts are cp1252; location strings carry degree signs
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Social Exposure Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02 15:04:05 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Profile info
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Profile", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Platform: "+scan.Platform, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Username: "+scan.Username, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "URL: "+scan.ProfileURL, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Scanned: "+scan.ScannedAt.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Risk block, filled with the level color
	r, g, b := levelColor(scan.RiskLevel)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 12, fmt.Sprintf("Risk Score: %d / 100  (%s)", scan.RiskScore, scan.RiskLevel), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Findings summary
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Findings", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	f := scan.Findings
	if len(f.Phones) > 0 {
		pdf.CellFormat(0, 6, fmt.Sprintf("Phone numbers (%d): %s", len(f.Phones), strings.Join(f.Phones, ", ")), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Phone numbers: None detected", "", 1, "L", false, 0, "")
	}
	if len(f.Emails) > 0 {
		pdf.CellFormat(0, 6, fmt.Sprintf("Email addresses (%d): %s", len(f.Emails), strings.Join(f.Emails, ", ")), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Email addresses: None detected", "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Faces detected in photos: %d", f.Faces), "", 1, "L", false, 0, "")
	if f.GPS != nil {
		pdf.CellFormat(0, 6, "Location data: "+tr(*f.GPS), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Location data: None detected", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Numbered recommendations
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Recommendations", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for i, rec := range scan.Recommendations {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
	}

	// Footer disclaimer
	pdf.SetY(-24)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(0, 4, "This report is generated from a simulated analysis for awareness purposes only. It is not an audit of the actual profile content.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
