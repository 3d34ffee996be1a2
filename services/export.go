package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"case_desk_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	sheetCases      = "Cases"
	sheetCourtDates = "Court Dates"
)

var caseHeaders = []string{"Case Number", "Title", "Type", "Status", "Client", "Assigned Attorney", "Court", "Judge", "Created"}
var courtDateHeaders = []string{"Date", "Case", "Hearing Type", "Court", "Judge", "Priority", "Notes"}

// GenerateCaseWorkbook exports every case and court date into an xlsx
// workbook with client, attorney and case names resolved
func GenerateCaseWorkbook(db *gorm.DB) (*bytes.Buffer, error) {
	cases, err := ListCases(db)
	if err != nil {
		return nil, err
	}
	courtDates, err := ListCourtDates(db)
	if err != nil {
		return nil, err
	}
	clients, err := ListClients(db)
	if err != nil {
		return nil, err
	}
	users, err := ListUsers(db)
	if err != nil {
		return nil, err
	}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	caseLabels := make(map[string]string, len(cases))
	for _, c := range cases {
		caseLabels[c.ID] = c.CaseNumber + " - " + c.Title
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetCases)
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	writeHeader(f, sheetCases, caseHeaders, headerStyle)
	for i, c := range cases {
		row := []interface{}{
			c.CaseNumber,
			c.Title,
			strings.ToUpper(c.CaseType),
			strings.ToUpper(c.Status),
			lookupName(clientNames, c.ClientID, "Unknown Client"),
			lookupName(userNames, c.AssignedAttorney, "Unknown Attorney"),
			c.CourtName,
			models.Deref(c.JudgeName),
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := writeRow(f, sheetCases, i+2, row); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(sheetCases, "A", "I", 22)

	f.NewSheet(sheetCourtDates)
	writeHeader(f, sheetCourtDates, courtDateHeaders, headerStyle)
	for i, d := range courtDates {
		row := []interface{}{
			d.Date.Format(time.RFC3339),
			lookupName(caseLabels, d.CaseID, "Unknown Case"),
			d.HearingType,
			d.CourtName,
			models.Deref(d.JudgeName),
			d.Priority,
			models.Deref(d.Notes),
		}
		if err := writeRow(f, sheetCourtDates, i+2, row); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(sheetCourtDates, "A", "G", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func lookupName(names map[string]string, id, fallback string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fallback
}
