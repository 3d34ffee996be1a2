package services

import (
	"strings"
	"testing"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateCaseWorkbook(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)

	orphan := models.Case{CaseNumber: "2024-CR-404", Title: "Orphan", CaseType: models.CaseTypeCriminal,
		ClientID: "gone", AssignedAttorney: "gone", CourtName: "District Court"}
	require.NoError(t, db.Create(&orphan).Error)
	require.NoError(t, db.Create(&models.CourtDate{CaseID: f.caseRec.ID, Date: time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC),
		CourtName: "Room 4", HearingType: "Trial", Priority: models.PriorityHigh}).Error)

	buf, err := GenerateCaseWorkbook(db)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Cases", "Court Dates"}, wb.GetSheetList())

	rows, err := wb.GetRows("Cases")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Case Number", rows[0][0])

	byNumber := map[string][]string{}
	for _, row := range rows[1:] {
		byNumber[row[0]] = row
	}
	assert.Equal(t, "CIVIL", byNumber["2024-CV-001"][2])
	assert.Equal(t, "ACTIVE", byNumber["2024-CV-001"][3])
	assert.Equal(t, "Thomas Jones", byNumber["2024-CV-001"][4])
	assert.Equal(t, "John Smith", byNumber["2024-CV-001"][5])
	assert.Equal(t, "Unknown Client", byNumber["2024-CR-404"][4])
	assert.Equal(t, "Unknown Attorney", byNumber["2024-CR-404"][5])

	dateRows, err := wb.GetRows("Court Dates")
	require.NoError(t, err)
	require.Len(t, dateRows, 2)
	assert.Equal(t, "2024-CV-001 - Smith v. Jones", dateRows[1][1])
	assert.Equal(t, "high", dateRows[1][5])
}

func TestBuildDocketHTML(t *testing.T) {
	generated := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	html, err := BuildDocketHTML(nil, generated)
	require.NoError(t, err)
	assert.Contains(t, html, "Upcoming Court Docket")
	assert.Contains(t, html, "No court dates scheduled in the next 30 days.")

	dates := []models.UpcomingCourtDate{{
		CourtDate: models.CourtDate{
			Date: time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC), HearingType: "Trial <urgent>",
			CourtName: "Superior Court", Priority: models.PriorityUrgent, JudgeName: stringPtr("Robert Chen"),
		},
		CaseTitle:  "Smith v. Jones",
		CaseNumber: "2024-CV-001",
	}}
	html, err = BuildDocketHTML(dates, generated)
	require.NoError(t, err)
	assert.Contains(t, html, "2024-CV-001 - Smith v. Jones")
	assert.Contains(t, html, "Robert Chen")
	assert.Contains(t, html, "priority-urgent")
	assert.Contains(t, html, "Trial &lt;urgent&gt;")
	assert.NotContains(t, html, "No court dates scheduled")
}

func TestPaperSize(t *testing.T) {
	w, h := paperSize("legal")
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 14.0, h)
	w, h = paperSize("")
	assert.Equal(t, 11.0, h)
	assert.Equal(t, 8.5, w)
	assert.Equal(t, "landscape", DefaultPDFOptions("").PageOrientation)
}

func TestBuildCourtDateReminderEmail(t *testing.T) {
	attorney := models.User{Name: "John Smith", Email: "john@firm.test"}
	dates := []models.UpcomingCourtDate{{
		CourtDate: models.CourtDate{Date: time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC), HearingType: "Motion Hearing",
			CourtName: "Superior Court", Priority: models.PriorityHigh},
		CaseTitle:  "Smith v. Jones",
		CaseNumber: "2024-CV-001",
	}}

	email, err := BuildCourtDateReminderEmail(attorney, dates)
	require.NoError(t, err)
	assert.Equal(t, []string{"john@firm.test"}, email.To)
	assert.Equal(t, "Court dates in the next 24 hours (1)", email.Subject)
	assert.True(t, strings.HasPrefix(email.TextBody, "Hello John Smith,"))
	assert.Contains(t, email.TextBody, "Motion Hearing (HIGH)")
	assert.Contains(t, email.HTMLBody, "<li><strong>Monday, February 3, 2025 at 9:00 AM</strong>")
}

func TestSendEmail(t *testing.T) {
	email := &Email{To: []string{"a@b.test"}, Subject: "s", TextBody: "t"}

	assert.NoError(t, SendEmail(&config.Config{EmailTestMode: true}, email))
	assert.Error(t, SendEmail(&config.Config{}, email))
}

func TestSeedDemoData(t *testing.T) {
	db := setupServiceTestDB(t)
	now := time.Now().UTC()

	result, err := SeedDemoData(db, now)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Users)
	assert.Equal(t, 3, result.Cases)

	cases, err := ListCases(db)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	again, err := SeedDemoData(db, now)
	require.NoError(t, err)
	assert.Zero(t, again.Cases)

	cases, err = ListCases(db)
	require.NoError(t, err)
	assert.Len(t, cases, 3)
}
