package screens

import (
	"context"

	"case_desk_app_go/models"
)

// CasesAPI is what the Cases screen needs from the backend
type CasesAPI interface {
	ListCases(ctx context.Context) ([]models.Case, error)
	CreateCase(ctx context.Context, input models.CaseInput) (*models.Case, error)
	UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (*models.Case, error)
	DeleteCase(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]models.Client, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

const (
	UnknownClient   = "Unknown Client"
	UnknownAttorney = "Unknown Attorney"
	UnknownCase     = "Unknown Case"
)

// CasesScreen lists cases with their client and attorney names resolved
type CasesScreen struct {
	*Controller[models.Case, models.CaseInput]

	Clients Index[models.Client]
	Users   Index[models.User]
}

// NewCasesScreen configures the Cases screen
func NewCasesScreen(api CasesAPI, opts ...Option) *CasesScreen {
	s := &CasesScreen{}

	filters := []Filter[models.Case]{{Value: FilterAll, Label: "All Cases"}}
	for _, status := range models.CaseStatuses {
		filters = append(filters, exactly(status, titleCase(status), func(c models.Case) string { return c.Status }))
	}
	for _, caseType := range models.CaseTypes {
		filters = append(filters, exactly(caseType, titleCase(caseType), func(c models.Case) string { return c.CaseType }))
	}

	s.Controller = NewController(Resource[models.Case, models.CaseInput]{
		Label:   "case",
		Plural:  "cases",
		ID:      func(c models.Case) string { return c.ID },
		Filters: filters,
		SearchFields: func(c models.Case) (string, string) {
			return c.Title, c.CaseNumber
		},
		Blank: models.NewCaseInput,
		Form:  func(c models.Case) models.CaseInput { return c.Input() },
		Validate: func(f models.CaseInput) error {
			return FirstError(
				Required("case_number", "Case number", f.CaseNumber),
				Required("title", "Title", f.Title),
				Required("case_type", "Case type", f.CaseType),
				Required("client_id", "Client", f.ClientID),
				Required("assigned_attorney", "Assigned attorney", f.AssignedAttorney),
				Required("court_name", "Court name", f.CourtName),
			)
		},
		DeletePrompt: func(models.Case) string {
			return "Are you sure you want to delete this case? This will also delete all associated court dates and documents."
		},
		List: api.ListCases,
		Create: func(ctx context.Context, f models.CaseInput) error {
			_, err := api.CreateCase(ctx, f)
			return err
		},
		Update: func(ctx context.Context, id string, f models.CaseInput) error {
			_, err := api.UpdateCase(ctx, id, CaseUpdateFromForm(f))
			return err
		},
		Delete: api.DeleteCase,
		Related: []Related{
			Relate(api.ListClients, func(c models.Client) string { return c.ID }, &s.Clients),
			Relate(api.ListUsers, func(u models.User) string { return u.ID }, &s.Users),
		},
	}, opts...)
	return s
}

// CaseUpdateFromForm keeps the fields the update endpoint accepts
func CaseUpdateFromForm(f models.CaseInput) models.CaseUpdate {
	return models.CaseUpdate{
		Title:            &f.Title,
		Status:           &f.Status,
		AssignedAttorney: &f.AssignedAttorney,
		CourtName:        &f.CourtName,
		JudgeName:        &f.JudgeName,
		Description:      &f.Description,
	}
}

// ClientName resolves the client of a case
func (s *CasesScreen) ClientName(c models.Case) string {
	if client, ok := s.Clients.Get(c.ClientID); ok {
		return client.Name
	}
	return UnknownClient
}

// AttorneyName resolves the assigned attorney of a case
func (s *CasesScreen) AttorneyName(c models.Case) string {
	if user, ok := s.Users.Get(c.AssignedAttorney); ok {
		return user.Name
	}
	return UnknownAttorney
}

// Attorneys lists the users that can be assigned to a case
func (s *CasesScreen) Attorneys() []models.User {
	var out []models.User
	for _, u := range s.Users.All() {
		if u.IsAttorney() {
			out = append(out, u)
		}
	}
	return out
}
