package pages

import (
	"case_desk_app_go/models"
	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

// UsersPage renders the Users screen
func UsersPage(layout Layout, s *screens.UsersScreen) templ.Component {
	return render(listTemplate, BuildUsersPage(layout, s))
}

// BuildUsersPage turns the screen state into the list page model
func BuildUsersPage(layout Layout, s *screens.UsersScreen) ListPage {
	const base = "/users"

	page := ListPage{
		Layout:    layout,
		Heading:   "Users",
		BasePath:  base,
		NewLabel:  "New User",
		Filters:   filterOptions(s.Filters(), s.Filter()),
		Search:    s.Search(),
		Columns:   []string{"Name", "Email", "Role", "Phone", "Joined"},
		Empty:     "No users found.",
		Deletable: s.Deletable(),
		Confirm:   confirmView(base, s.Pending()),
	}

	for _, u := range s.View() {
		page.Rows = append(page.Rows, Row{ID: u.ID, Cells: []Cell{
			text(u.Name),
			text(u.Email),
			badge(u.Role),
			text(models.Deref(u.Phone)),
			text(layout.In(u.CreatedAt).Format("Jan 2, 2006")),
		}})
	}

	if m := s.Modal(); m != nil {
		page.Modal = &ModalView{
			Title:  modalTitle(m.Mode, "User"),
			Action: modalAction(base, m.Mode, m.ID),
			Submit: "Save User",
			Fields: []Field{
				{Name: "name", Label: "Name", Type: "text", Value: m.Form.Name, Required: true},
				{Name: "email", Label: "Email", Type: "email", Value: m.Form.Email, Required: true},
				{Name: "role", Label: "Role", Type: "select", Required: true,
					Options: options(models.UserRoles, m.Form.Role, identity)},
				{Name: "phone", Label: "Phone", Type: "tel", Value: m.Form.Phone},
			},
		}
	}
	return page
}
