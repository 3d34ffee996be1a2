package pages

import (
	"case_desk_app_go/models"
	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

// ClientsPage renders the Clients screen
func ClientsPage(layout Layout, s *screens.ClientsScreen) templ.Component {
	return render(listTemplate, BuildClientsPage(layout, s))
}

// BuildClientsPage turns the screen state into the list page model
func BuildClientsPage(layout Layout, s *screens.ClientsScreen) ListPage {
	const base = "/clients"

	page := ListPage{
		Layout:    layout,
		Heading:   "Clients",
		BasePath:  base,
		NewLabel:  "New Client",
		Filters:   filterOptions(s.Filters(), s.Filter()),
		Search:    s.Search(),
		Columns:   []string{"Name", "Email", "Phone", "Address"},
		Empty:     "No clients found.",
		Deletable: s.Deletable(),
		Confirm:   confirmView(base, s.Pending()),
	}

	for _, c := range s.View() {
		page.Rows = append(page.Rows, Row{ID: c.ID, Cells: []Cell{
			text(c.Name),
			text(models.Deref(c.Email)),
			text(models.Deref(c.Phone)),
			text(models.Deref(c.Address)),
		}})
	}

	if m := s.Modal(); m != nil {
		page.Modal = &ModalView{
			Title:  modalTitle(m.Mode, "Client"),
			Action: modalAction(base, m.Mode, m.ID),
			Submit: "Save Client",
			Fields: []Field{
				{Name: "name", Label: "Name", Type: "text", Value: m.Form.Name, Required: true},
				{Name: "email", Label: "Email", Type: "email", Value: m.Form.Email},
				{Name: "phone", Label: "Phone", Type: "tel", Value: m.Form.Phone},
				{Name: "address", Label: "Address", Type: "textarea", Value: m.Form.Address},
			},
		}
	}
	return page
}
