package screens

import (
	"context"
	"time"

	"case_desk_app_go/models"
)

// CourtDatesAPI is what the Court Dates screen needs from the backend.
// There is no update endpoint.
type CourtDatesAPI interface {
	ListCourtDates(ctx context.Context) ([]models.CourtDate, error)
	CreateCourtDate(ctx context.Context, input models.CourtDateInput) (*models.CourtDate, error)
	DeleteCourtDate(ctx context.Context, id string) error
	ListCases(ctx context.Context) ([]models.Case, error)
}

// Court date bucket filters
const (
	FilterUpcoming = "upcoming"
	FilterToday    = "today"
	FilterPast     = "past"
)

// CourtDatesScreen lists court dates bucketed around now
type CourtDatesScreen struct {
	*Controller[models.CourtDate, models.CourtDateInput]

	Cases Index[models.Case]
}

// NewCourtDatesScreen configures the Court Dates screen
func NewCourtDatesScreen(api CourtDatesAPI, opts ...Option) *CourtDatesScreen {
	s := &CourtDatesScreen{}
	s.Controller = NewController(Resource[models.CourtDate, models.CourtDateInput]{
		Label:  "court date",
		Plural: "court dates",
		ID:     func(d models.CourtDate) string { return d.ID },
		Filters: []Filter[models.CourtDate]{
			{Value: FilterUpcoming, Label: "Upcoming", Match: func(d models.CourtDate, now time.Time) bool { return IsUpcoming(d.Date, now) }},
			{Value: FilterToday, Label: "Today", Match: func(d models.CourtDate, now time.Time) bool { return IsToday(d.Date, now) }},
			{Value: FilterPast, Label: "Past", Match: func(d models.CourtDate, now time.Time) bool { return IsPast(d.Date, now) }},
			{Value: FilterAll, Label: "All Dates"},
		},
		DefaultFilter: FilterUpcoming,
		SearchFields: func(d models.CourtDate) (string, string) {
			return d.HearingType, d.CourtName
		},
		Blank: models.NewCourtDateInput,
		Form:  func(d models.CourtDate) models.CourtDateInput { return d.Input() },
		Validate: func(f models.CourtDateInput) error {
			return FirstError(
				Required("case_id", "Case", f.CaseID),
				Required("date", "Date and time", f.Date),
				Required("court_name", "Court name", f.CourtName),
				Required("hearing_type", "Hearing type", f.HearingType),
			)
		},
		DeletePrompt: func(models.CourtDate) string {
			return "Are you sure you want to delete this court date?"
		},
		List: api.ListCourtDates,
		Create: func(ctx context.Context, f models.CourtDateInput) error {
			_, err := api.CreateCourtDate(ctx, f)
			return err
		},
		Delete: api.DeleteCourtDate,
		Related: []Related{
			Relate(api.ListCases, func(c models.Case) string { return c.ID }, &s.Cases),
		},
	}, opts...)
	return s
}

// CaseLabel resolves the case of a court date as "<number> - <title>"
func (s *CourtDatesScreen) CaseLabel(d models.CourtDate) string {
	if c, ok := s.Cases.Get(d.CaseID); ok {
		return c.CaseNumber + " - " + c.Title
	}
	return UnknownCase
}
