package repository

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

// Workbook column headers as exported by HR. Matching is case-insensitive
// and ignores surrounding whitespace; unknown columns are skipped.
var workbookHeaderFields = map[string]string{
	"emp id":            "id",
	"employee id":       "id",
	"name":              "name",
	"department":        "department",
	"grade":             "grade",
	"designation":       "grade",
	"reporting manager": "reportingManager",
	"reporting id":      "reportingId",
	"location":          "location",
	"mobile":            "mobile",
	"extension":         "extension",
	"email":             "email",
	"date of joining":   "dateOfJoining",
	"doj":               "dateOfJoining",
}

// ParseWorkbook loads the employee directory from the HR workbook file.
func ParseWorkbook(path string) ([]domain.Employee, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

// ParseWorkbookReader is the stream variant, used for uploads.
func ParseWorkbookReader(r io.Reader) ([]domain.Employee, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) ([]domain.Employee, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheets[0])
	}

	// map column index -> field name from the header row
	fields := map[int]string{}
	for i, h := range rows[0] {
		if field, ok := workbookHeaderFields[strings.ToLower(strings.TrimSpace(h))]; ok {
			fields[i] = field
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("sheet %s has no recognizable headers", sheets[0])
	}

	now := time.Now().UTC()
	var out []domain.Employee
	for _, row := range rows[1:] {
		e := domain.Employee{
			Extension:    "0",
			ProfileImage: domain.DefaultProfileImage,
			LastUpdated:  now,
		}
		for i, cell := range row {
			v := strings.TrimSpace(cell)
			if v == "" {
				continue
			}
			switch fields[i] {
			case "id":
				e.ID = v
			case "name":
				e.Name = v
			case "department":
				e.Department = v
			case "grade":
				e.Grade = v
			case "reportingManager":
				e.ReportingManager = v
			case "reportingId":
				e.ReportingID = v
			case "location":
				e.Location = v
			case "mobile":
				e.Mobile = v
			case "extension":
				e.Extension = v
			case "email":
				e.Email = v
			case "dateOfJoining":
				e.DateOfJoining = normalizeWorkbookDate(v)
			}
		}
		// rows without an id or name are formatting artifacts
		if e.ID == "" || e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// normalizeWorkbookDate accepts the formats HR exports use and returns
// YYYY-MM-DD; unrecognized values pass through unchanged.
func normalizeWorkbookDate(v string) string {
	for _, layout := range []string{"2006-01-02", "01-02-06", "1/2/06", "01/02/2006", "2-Jan-2006", "2-Jan-06"} {
		if d, err := time.Parse(layout, v); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return v
}
