package screens

import (
	"context"

	"case_desk_app_go/models"
)

// UsersAPI is what the Users screen needs. Users can only be listed and
// created.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input models.UserInput) (*models.User, error)
}

// UsersScreen lists attorneys, judges, clerks and paralegals
type UsersScreen struct {
	*Controller[models.User, models.UserInput]
}

// NewUsersScreen configures the Users screen
func NewUsersScreen(api UsersAPI, opts ...Option) *UsersScreen {
	filters := []Filter[models.User]{{Value: FilterAll, Label: "All Users"}}
	for _, role := range models.UserRoles {
		filters = append(filters, exactly(role, titleCase(role)+"s", func(u models.User) string { return u.Role }))
	}

	return &UsersScreen{NewController(Resource[models.User, models.UserInput]{
		Label:   "user",
		Plural:  "users",
		ID:      func(u models.User) string { return u.ID },
		Filters: filters,
		SearchFields: func(u models.User) (string, string) {
			return u.Name, u.Email
		},
		Blank: models.NewUserInput,
		Form:  func(u models.User) models.UserInput { return u.Input() },
		Validate: func(f models.UserInput) error {
			return FirstError(
				Required("name", "Name", f.Name),
				Required("email", "Email", f.Email),
				Required("role", "Role", f.Role),
			)
		},
		List: api.ListUsers,
		Create: func(ctx context.Context, f models.UserInput) error {
			_, err := api.CreateUser(ctx, f)
			return err
		},
	}, opts...)}
}
