package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/digimosa/exposure-scan/internal/models"
)

const historySheet = "History"

var historyHeaders = []string{
	"ID", "Platform", "Username", "Profile URL", "Risk Score", "Risk Level",
	"Scanned At", "Phones", "Emails", "Faces", "GPS", "Leaks", "Recommendations",
}

// XLSX renders the scan history into a spreadsheet, one row per scan,
// in the order given (the store already lists newest first).
func XLSX(scans []models.Scan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", historySheet)

	for col, header := range historyHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(historySheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, scan := range scans {
		gps := ""
		if scan.Findings.GPS != nil {
			gps = *scan.Findings.GPS
		}
		values := []interface{}{
			scan.ID,
			scan.Platform,
			scan.Username,
			scan.ProfileURL,
			scan.RiskScore,
			string(scan.RiskLevel),
			scan.ScannedAt.UTC().Format(time.RFC3339),
			strings.Join(scan.Findings.Phones, ", "),
			strings.Join(scan.Findings.Emails, ", "),
			scan.Findings.Faces,
			gps,
			strings.Join(scan.Leaks, "; "),
			strings.Join(scan.Recommendations, "; "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(historySheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
