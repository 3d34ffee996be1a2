package screens

import (
	"context"
	"time"

	"case_desk_app_go/models"
)

// ClientsAPI is what the Clients screen needs from the backend
type ClientsAPI interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, input models.ClientInput) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, input models.ClientInput) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// ClientsScreen lists the office's clients
type ClientsScreen struct {
	*Controller[models.Client, models.ClientInput]
}

// NewClientsScreen configures the Clients screen
func NewClientsScreen(api ClientsAPI, opts ...Option) *ClientsScreen {
	hasEmail := func(c models.Client) bool { return models.Deref(c.Email) != "" }

	return &ClientsScreen{NewController(Resource[models.Client, models.ClientInput]{
		Label:  "client",
		Plural: "clients",
		ID:     func(c models.Client) string { return c.ID },
		Filters: []Filter[models.Client]{
			{Value: FilterAll, Label: "All Clients"},
			{Value: "with-email", Label: "With Email", Match: func(c models.Client, _ time.Time) bool { return hasEmail(c) }},
			{Value: "without-email", Label: "Without Email", Match: func(c models.Client, _ time.Time) bool { return !hasEmail(c) }},
		},
		SearchFields: func(c models.Client) (string, string) {
			return c.Name, models.Deref(c.Email)
		},
		Blank: func() models.ClientInput { return models.ClientInput{} },
		Form:  func(c models.Client) models.ClientInput { return c.Input() },
		Validate: func(f models.ClientInput) error {
			return Required("name", "Name", f.Name)
		},
		List: api.ListClients,
		Create: func(ctx context.Context, f models.ClientInput) error {
			_, err := api.CreateClient(ctx, f)
			return err
		},
		Update: func(ctx context.Context, id string, f models.ClientInput) error {
			_, err := api.UpdateClient(ctx, id, f)
			return err
		},
		Delete: api.DeleteClient,
	}, opts...)}
}
