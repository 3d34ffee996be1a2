package services

import (
	"fmt"
	"strings"
	"time"

	"case_desk_app_go/models"
)

// CourtDateDuration is the calendar length of a court date, which has no
// end time of its own
const CourtDateDuration = time.Hour

const icsDateFormat = "20060102T150405Z"

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)

// GenerateDocketICS renders court dates as an iCalendar feed with one event
// per date. Times are written in UTC.
func GenerateDocketICS(dates []models.UpcomingCourtDate, generatedAt time.Time) []byte {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\r\n", args...)
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//Case Desk//Court Docket//EN")
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")

	stamp := generatedAt.UTC().Format(icsDateFormat)
	for _, d := range dates {
		summary := d.HearingType
		if d.CaseNumber != "" {
			summary = fmt.Sprintf("%s: %s", d.HearingType, d.CaseNumber)
		}

		description := d.CaseTitle
		if d.JudgeName != nil && *d.JudgeName != "" {
			description += "\nJudge: " + *d.JudgeName
		}
		if d.Notes != nil && *d.Notes != "" {
			description += "\n\nNotes: " + *d.Notes
		}

		line("BEGIN:VEVENT")
		line("UID:%s@casedesk", d.ID)
		line("DTSTAMP:%s", stamp)
		line("DTSTART:%s", d.Date.UTC().Format(icsDateFormat))
		line("DTEND:%s", d.Date.Add(CourtDateDuration).UTC().Format(icsDateFormat))
		line("SUMMARY:%s", icsEscaper.Replace(summary))
		line("LOCATION:%s", icsEscaper.Replace(d.CourtName))
		line("DESCRIPTION:%s", icsEscaper.Replace(strings.TrimSpace(description)))
		line("PRIORITY:%d", icsPriority(d.Priority))
		line("STATUS:CONFIRMED")
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return []byte(b.String())
}

// icsPriority maps court date priority onto the 1 (highest) to 9 scale
func icsPriority(priority string) int {
	switch priority {
	case models.PriorityUrgent:
		return 1
	case models.PriorityHigh:
		return 3
	case models.PriorityLow:
		return 9
	default:
		return 5
	}
}
