package pages

import (
	"case_desk_app_go/models"
	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

// CourtDatesPage renders the Court Dates screen
func CourtDatesPage(layout Layout, s *screens.CourtDatesScreen) templ.Component {
	return render(listTemplate, BuildCourtDatesPage(layout, s))
}

// BuildCourtDatesPage turns the screen state into the list page model
func BuildCourtDatesPage(layout Layout, s *screens.CourtDatesScreen) ListPage {
	const base = "/court-dates"

	page := ListPage{
		Layout:    layout,
		Heading:   "Court Dates",
		BasePath:  base,
		NewLabel:  "Schedule Court Date",
		Filters:   filterOptions(s.Filters(), s.Filter()),
		Search:    s.Search(),
		Columns:   []string{"Date", "Case", "Hearing Type", "Court", "Judge", "Priority"},
		Empty:     "No court dates found.",
		Deletable: s.Deletable(),
		Confirm:   confirmView(base, s.Pending()),
	}

	for _, d := range s.View() {
		page.Rows = append(page.Rows, Row{ID: d.ID, Cells: []Cell{
			text(layout.DateTime(d.Date)),
			text(s.CaseLabel(d)),
			text(d.HearingType),
			text(d.CourtName),
			text(models.Deref(d.JudgeName)),
			badge(d.Priority),
		}})
	}

	if m := s.Modal(); m != nil {
		cases := make([]Option, 0, s.Cases.Len())
		for _, c := range s.Cases.All() {
			cases = append(cases, Option{Value: c.ID, Label: c.CaseNumber + " - " + c.Title, Selected: c.ID == m.Form.CaseID})
		}

		page.Modal = &ModalView{
			Title:  modalTitle(m.Mode, "Court Date"),
			Action: modalAction(base, m.Mode, m.ID),
			Submit: "Save Court Date",
			Fields: []Field{
				{Name: "case_id", Label: "Case", Type: "select", Required: true, Options: cases},
				{Name: "date", Label: "Date & Time", Type: "datetime-local", Value: m.Form.Date, Required: true},
				{Name: "hearing_type", Label: "Hearing Type", Type: "text", Value: m.Form.HearingType, Required: true},
				{Name: "court_name", Label: "Court Name", Type: "text", Value: m.Form.CourtName, Required: true},
				{Name: "judge_name", Label: "Judge Name", Type: "text", Value: m.Form.JudgeName},
				{Name: "priority", Label: "Priority", Type: "select",
					Options: options(models.Priorities, m.Form.Priority, screens.Badge)},
				{Name: "notes", Label: "Notes", Type: "textarea", Value: m.Form.Notes},
			},
		}
	}
	return page
}
