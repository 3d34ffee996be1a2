package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"case_desk_app_go/models"
)

var errBackendDown = errors.New("backend down")

// fakeBackend is an in-memory API recording every call
type fakeBackend struct {
	cases      []models.Case
	clients    []models.Client
	courtDates []models.CourtDate
	users      []models.User

	mu      sync.Mutex
	calls   []string
	fail    map[string]bool
	updates []models.CaseUpdate
	seq     int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fail: map[string]bool{}}
}

func (f *fakeBackend) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.fail[call] {
		return errBackendDown
	}
	return nil
}

func (f *fakeBackend) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeBackend) ListCases(ctx context.Context) ([]models.Case, error) {
	if err := f.record("ListCases"); err != nil {
		return nil, err
	}
	return append([]models.Case(nil), f.cases...), nil
}

func (f *fakeBackend) CreateCase(ctx context.Context, input models.CaseInput) (*models.Case, error) {
	if err := f.record("CreateCase"); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = models.CaseStatusActive
	}
	c := models.Case{
		ID: f.nextID("case"), CaseNumber: input.CaseNumber, Title: input.Title, CaseType: input.CaseType,
		Status: status, ClientID: input.ClientID, AssignedAttorney: input.AssignedAttorney, CourtName: input.CourtName,
		JudgeName: models.OptionalString(input.JudgeName), Description: models.OptionalString(input.Description),
	}
	f.cases = append(f.cases, c)
	return &c, nil
}

func (f *fakeBackend) UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (*models.Case, error) {
	if err := f.record("UpdateCase"); err != nil {
		return nil, err
	}
	f.updates = append(f.updates, update)
	for i := range f.cases {
		if f.cases[i].ID == id {
			if update.Title != nil {
				f.cases[i].Title = *update.Title
			}
			if update.Status != nil {
				f.cases[i].Status = *update.Status
			}
			return &f.cases[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBackend) DeleteCase(ctx context.Context, id string) error {
	if err := f.record("DeleteCase"); err != nil {
		return err
	}
	for i := range f.cases {
		if f.cases[i].ID == id {
			f.cases = append(f.cases[:i], f.cases[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeBackend) ListClients(ctx context.Context) ([]models.Client, error) {
	if err := f.record("ListClients"); err != nil {
		return nil, err
	}
	return append([]models.Client(nil), f.clients...), nil
}

func (f *fakeBackend) CreateClient(ctx context.Context, input models.ClientInput) (*models.Client, error) {
	if err := f.record("CreateClient"); err != nil {
		return nil, err
	}
	c := models.Client{ID: f.nextID("client"), Name: input.Name, Email: models.OptionalString(input.Email)}
	f.clients = append(f.clients, c)
	return &c, nil
}

func (f *fakeBackend) UpdateClient(ctx context.Context, id string, input models.ClientInput) (*models.Client, error) {
	if err := f.record("UpdateClient"); err != nil {
		return nil, err
	}
	for i := range f.clients {
		if f.clients[i].ID == id {
			f.clients[i].Name = input.Name
			f.clients[i].Email = models.OptionalString(input.Email)
			return &f.clients[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBackend) DeleteClient(ctx context.Context, id string) error {
	return f.record("DeleteClient")
}

func (f *fakeBackend) ListCourtDates(ctx context.Context) ([]models.CourtDate, error) {
	if err := f.record("ListCourtDates"); err != nil {
		return nil, err
	}
	return append([]models.CourtDate(nil), f.courtDates...), nil
}

func (f *fakeBackend) CreateCourtDate(ctx context.Context, input models.CourtDateInput) (*models.CourtDate, error) {
	if err := f.record("CreateCourtDate"); err != nil {
		return nil, err
	}
	date, _ := time.Parse(models.DateInputLayout, input.Date)
	d := models.CourtDate{ID: f.nextID("date"), CaseID: input.CaseID, Date: date, CourtName: input.CourtName,
		HearingType: input.HearingType, Priority: input.Priority}
	f.courtDates = append(f.courtDates, d)
	return &d, nil
}

func (f *fakeBackend) DeleteCourtDate(ctx context.Context, id string) error {
	if err := f.record("DeleteCourtDate"); err != nil {
		return err
	}
	for i := range f.courtDates {
		if f.courtDates[i].ID == id {
			f.courtDates = append(f.courtDates[:i], f.courtDates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeBackend) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	if err := f.record("CreateUser"); err != nil {
		return nil, err
	}
	u := models.User{ID: f.nextID("user"), Name: input.Name, Email: input.Email, Role: input.Role}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeBackend) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if err := f.record("DashboardStats"); err != nil {
		return nil, err
	}
	var active int64
	for _, c := range f.cases {
		if c.Status == models.CaseStatusActive {
			active++
		}
	}
	return &models.DashboardStats{TotalCases: int64(len(f.cases)), ActiveCases: active, TotalClients: int64(len(f.clients))}, nil
}

func (f *fakeBackend) UpcomingCourtDates(ctx context.Context) ([]models.UpcomingCourtDate, error) {
	if err := f.record("UpcomingCourtDates"); err != nil {
		return nil, err
	}
	out := make([]models.UpcomingCourtDate, 0, len(f.courtDates))
	for _, d := range f.courtDates {
		out = append(out, models.UpcomingCourtDate{CourtDate: d})
	}
	return out, nil
}

// mutations returns the calls that are not reads
func (f *fakeBackend) mutations() []string {
	var out []string
	for _, call := range f.calls {
		switch call {
		case "ListCases", "ListClients", "ListCourtDates", "ListUsers", "DashboardStats", "UpcomingCourtDates":
		default:
			out = append(out, call)
		}
	}
	return out
}
