package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"case_desk_app_go/models"
)

// Cases

func (c *Client) ListCases(ctx context.Context) ([]models.Case, error) {
	var cases []models.Case
	if err := c.do(ctx, http.MethodGet, "/api/cases", nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (c *Client) CreateCase(ctx context.Context, input models.CaseInput) (*models.Case, error) {
	var created models.Case
	if err := c.do(ctx, http.MethodPost, "/api/cases", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (*models.Case, error) {
	var updated models.Case
	if err := c.do(ctx, http.MethodPut, "/api/cases/"+url.PathEscape(id), update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCase(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cases/"+url.PathEscape(id), nil, nil)
}

// Clients

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, input models.ClientInput) (*models.Client, error) {
	var created models.Client
	if err := c.do(ctx, http.MethodPost, "/api/clients", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, input models.ClientInput) (*models.Client, error) {
	var updated models.Client
	if err := c.do(ctx, http.MethodPut, "/api/clients/"+url.PathEscape(id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+url.PathEscape(id), nil, nil)
}

// Court dates

func (c *Client) ListCourtDates(ctx context.Context) ([]models.CourtDate, error) {
	var dates []models.CourtDate
	if err := c.do(ctx, http.MethodGet, "/api/court-dates", nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *Client) ListCourtDatesByCase(ctx context.Context, caseID string) ([]models.CourtDate, error) {
	var dates []models.CourtDate
	if err := c.do(ctx, http.MethodGet, "/api/court-dates/case/"+url.PathEscape(caseID), nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *Client) CreateCourtDate(ctx context.Context, input models.CourtDateInput) (*models.CourtDate, error) {
	var created models.CourtDate
	if err := c.do(ctx, http.MethodPost, "/api/court-dates", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteCourtDate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/court-dates/"+url.PathEscape(id), nil, nil)
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Documents

func (c *Client) ListDocumentsByCase(ctx context.Context, caseID string) ([]models.Document, error) {
	var docs []models.Document
	if err := c.do(ctx, http.MethodGet, "/api/documents/case/"+url.PathEscape(caseID), nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) UploadDocument(ctx context.Context, input models.DocumentInput) (*models.Document, error) {
	var created models.Document
	if err := c.do(ctx, http.MethodPost, "/api/documents", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(id), nil, nil)
}

// Dashboard

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) UpcomingCourtDates(ctx context.Context) ([]models.UpcomingCourtDate, error) {
	var dates []models.UpcomingCourtDate
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/upcoming-dates", nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}
