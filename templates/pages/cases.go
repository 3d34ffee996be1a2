package pages

import (
	"case_desk_app_go/models"
	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

// CasesPage renders the Cases screen
func CasesPage(layout Layout, s *screens.CasesScreen) templ.Component {
	return render(listTemplate, BuildCasesPage(layout, s))
}

// BuildCasesPage turns the screen state into the list page model
func BuildCasesPage(layout Layout, s *screens.CasesScreen) ListPage {
	const base = "/cases"

	page := ListPage{
		Layout:    layout,
		Heading:   "Cases",
		BasePath:  base,
		NewLabel:  "New Case",
		Filters:   filterOptions(s.Filters(), s.Filter()),
		Search:    s.Search(),
		Columns:   []string{"Case Number", "Title", "Type", "Status", "Client", "Attorney", "Court"},
		Empty:     "No cases found.",
		Deletable: s.Deletable(),
		Confirm:   confirmView(base, s.Pending()),
	}

	for _, c := range s.View() {
		page.Rows = append(page.Rows, Row{ID: c.ID, Cells: []Cell{
			text(c.CaseNumber),
			text(c.Title),
			badge(c.CaseType),
			badge(c.Status),
			text(s.ClientName(c)),
			text(s.AttorneyName(c)),
			text(c.CourtName),
		}})
	}

	if m := s.Modal(); m != nil {
		clients := make([]Option, 0, s.Clients.Len())
		for _, cl := range s.Clients.All() {
			clients = append(clients, Option{Value: cl.ID, Label: cl.Name, Selected: cl.ID == m.Form.ClientID})
		}
		attorneys := []Option{}
		for _, u := range s.Attorneys() {
			attorneys = append(attorneys, Option{Value: u.ID, Label: u.Name, Selected: u.ID == m.Form.AssignedAttorney})
		}

		page.Modal = &ModalView{
			Title:  modalTitle(m.Mode, "Case"),
			Action: modalAction(base, m.Mode, m.ID),
			Submit: "Save Case",
			Fields: []Field{
				{Name: "case_number", Label: "Case Number", Type: "text", Value: m.Form.CaseNumber, Required: true},
				{Name: "title", Label: "Title", Type: "text", Value: m.Form.Title, Required: true},
				{Name: "case_type", Label: "Case Type", Type: "select", Required: true,
					Options: options(models.CaseTypes, m.Form.CaseType, screens.Badge)},
				{Name: "status", Label: "Status", Type: "select",
					Options: options(models.CaseStatuses, m.Form.Status, screens.Badge)},
				{Name: "client_id", Label: "Client", Type: "select", Required: true, Options: clients},
				{Name: "assigned_attorney", Label: "Assigned Attorney", Type: "select", Required: true, Options: attorneys},
				{Name: "court_name", Label: "Court Name", Type: "text", Value: m.Form.CourtName, Required: true},
				{Name: "judge_name", Label: "Judge Name", Type: "text", Value: m.Form.JudgeName},
				{Name: "description", Label: "Description", Type: "textarea", Value: m.Form.Description},
			},
		}
	}
	return page
}
