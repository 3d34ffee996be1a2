package pages

import (
	"time"

	"case_desk_app_go/screens"
)

// Layout is the shell around every page. Times are shown in Location,
// the server's zone when unset.
type Layout struct {
	Title    string
	Nav      *screens.Navigation
	Notices  []screens.Notice
	CSRF     string
	Nonce    string
	Location *time.Location
}

// In converts t to the page's location
func (l Layout) In(t time.Time) time.Time {
	if l.Location == nil {
		return t.Local()
	}
	return t.In(l.Location)
}

// DateTime formats a court date or other timestamp for display
func (l Layout) DateTime(t time.Time) string {
	return l.In(t).Format("Jan 2, 2006 3:04 PM")
}

// FilterOption is one entry of the filter select
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

// Cell is one table cell; Badge cells render as a pill with Class
type Cell struct {
	Text  string
	Badge bool
	Class string
}

// Row is one record of the table
type Row struct {
	ID    string
	Cells []Cell
}

// Option is one choice of a select field
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one input of the modal form. Type is text, email, tel,
// textarea, select or datetime-local.
type Field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
	Options  []Option
}

// ModalView is the open create/edit form
type ModalView struct {
	Title  string
	Action string
	Submit string
	Fields []Field
}

// ConfirmView is the delete confirmation dialog
type ConfirmView struct {
	Prompt    string
	Action    string
	CancelURL string
}

// ListPage is an entity screen rendered as a table
type ListPage struct {
	Layout

	Heading   string
	BasePath  string
	NewLabel  string
	Filters   []FilterOption
	Search    string
	Columns   []string
	Rows      []Row
	Empty     string
	Deletable bool

	Modal   *ModalView
	Confirm *ConfirmView
}

func filterOptions[T any](filters []screens.Filter[T], selected string) []FilterOption {
	out := make([]FilterOption, 0, len(filters))
	for _, f := range filters {
		out = append(out, FilterOption{Value: f.Value, Label: f.Label, Selected: f.Value == selected})
	}
	return out
}

func options(values []string, selected string, label func(string) string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: label(v), Selected: v == selected})
	}
	return out
}

func confirmView(basePath string, pending *screens.Confirmation) *ConfirmView {
	if pending == nil {
		return nil
	}
	return &ConfirmView{
		Prompt:    pending.Prompt,
		Action:    basePath + "/" + pending.ID + "/delete",
		CancelURL: basePath,
	}
}

func modalAction(basePath string, mode screens.ModalMode, id string) string {
	if mode == screens.ModeEdit {
		return basePath + "/" + id
	}
	return basePath
}

func modalTitle(mode screens.ModalMode, label string) string {
	if mode == screens.ModeEdit {
		return "Edit " + label
	}
	return "New " + label
}

// badgeClass picks the pill colour of a status, type, role or priority
func badgeClass(value string) string {
	switch value {
	case "active", "attorney", "low":
		return "bg-green-100 text-green-800"
	case "pending", "medium", "paralegal":
		return "bg-yellow-100 text-yellow-800"
	case "closed", "dismissed", "clerk":
		return "bg-gray-100 text-gray-800"
	case "settled", "civil", "judge":
		return "bg-blue-100 text-blue-800"
	case "criminal", "high":
		return "bg-orange-100 text-orange-800"
	case "urgent":
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

func badge(value string) Cell {
	return Cell{Text: screens.Badge(value), Badge: true, Class: badgeClass(value)}
}

func text(value string) Cell {
	return Cell{Text: value}
}

func identity(s string) string { return s }
