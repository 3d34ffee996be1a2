package handlers

import (
	"context"
	"errors"
	"sync"

	"case_desk_app_go/models"
)

var errBackendDown = errors.New("backend down")

// fakeBackend is an in-memory Backend recording every mutation
type fakeBackend struct {
	mu        sync.Mutex
	mutations []string
	failList  bool

	cases   []models.Case
	clients []models.Client
	users   []models.User
	dates   []models.CourtDate
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		clients: []models.Client{{ID: "cl-1", Name: "Alice Smith"}},
		users: []models.User{
			{ID: "u-1", Name: "John Smith", Email: "john.smith@lawfirm.com", Role: models.RoleAttorney},
			{ID: "u-2", Name: "Jane Doe", Email: "jane.doe@lawfirm.com", Role: models.RoleParalegal},
		},
		cases: []models.Case{{
			ID: "c-1", CaseNumber: "2024-CV-001", Title: "Smith v. Jones",
			CaseType: models.CaseTypeCivil, Status: models.CaseStatusActive,
			ClientID: "cl-1", AssignedAttorney: "u-1", CourtName: "Superior Court",
		}},
		dates: []models.CourtDate{{ID: "d-1", CaseID: "c-1", HearingType: "Motion Hearing", CourtName: "Superior Court", Priority: models.PriorityHigh}},
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, call)
}

func (f *fakeBackend) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.mutations...)
}

func (f *fakeBackend) ListCases(ctx context.Context) ([]models.Case, error) {
	if f.failList {
		return nil, errBackendDown
	}
	return f.cases, nil
}

func (f *fakeBackend) CreateCase(ctx context.Context, input models.CaseInput) (*models.Case, error) {
	f.record("create case " + input.CaseNumber)
	return &models.Case{ID: "c-new", CaseNumber: input.CaseNumber}, nil
}

func (f *fakeBackend) UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (*models.Case, error) {
	f.record("update case " + id)
	return &models.Case{ID: id}, nil
}

func (f *fakeBackend) DeleteCase(ctx context.Context, id string) error {
	f.record("delete case " + id)
	return nil
}

func (f *fakeBackend) ListClients(ctx context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeBackend) CreateClient(ctx context.Context, input models.ClientInput) (*models.Client, error) {
	f.record("create client " + input.Name)
	return &models.Client{ID: "cl-new", Name: input.Name}, nil
}

func (f *fakeBackend) UpdateClient(ctx context.Context, id string, input models.ClientInput) (*models.Client, error) {
	f.record("update client " + id)
	return &models.Client{ID: id, Name: input.Name}, nil
}

func (f *fakeBackend) DeleteClient(ctx context.Context, id string) error {
	f.record("delete client " + id)
	return nil
}

func (f *fakeBackend) ListCourtDates(ctx context.Context) ([]models.CourtDate, error) {
	return f.dates, nil
}

func (f *fakeBackend) CreateCourtDate(ctx context.Context, input models.CourtDateInput) (*models.CourtDate, error) {
	f.record("create court date " + input.CaseID)
	return &models.CourtDate{ID: "d-new"}, nil
}

func (f *fakeBackend) DeleteCourtDate(ctx context.Context, id string) error {
	f.record("delete court date " + id)
	return nil
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeBackend) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	f.record("create user " + input.Email)
	return &models.User{ID: "u-new"}, nil
}

func (f *fakeBackend) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{TotalCases: int64(len(f.cases)), ActiveCases: 1, TotalClients: int64(len(f.clients))}, nil
}

func (f *fakeBackend) UpcomingCourtDates(ctx context.Context) ([]models.UpcomingCourtDate, error) {
	return nil, nil
}
