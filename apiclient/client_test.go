package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"case_desk_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cases", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"c1","case_number":"2024-CV-001","title":"Smith v. Jones","case_type":"civil","status":"active"}]`))
	}))
	defer srv.Close()

	cases, err := New(srv.URL+"/", time.Second).ListCases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "Smith v. Jones", cases[0].Title)
}

func TestClient_SendsJSONBody(t *testing.T) {
	var got models.CaseUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cases/c1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"c1","title":"Renamed"}`))
	}))
	defer srv.Close()

	title := "Renamed"
	updated, err := New(srv.URL, time.Second).UpdateCase(context.Background(), "c1", models.CaseUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Renamed", *got.Title)
	assert.Nil(t, got.Status)
}

func TestClient_ErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		detail string
	}{
		{"string detail", http.StatusNotFound, `{"detail":"Client not found"}`, "Client not found"},
		{"structured detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","title"]}]}`, `[{"loc":["body","title"]}]`},
		{"plain text", http.StatusBadGateway, "upstream down\n", "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New(srv.URL, time.Second).DeleteClient(context.Background(), "x")
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.detail, apiErr.Detail)
		})
	}
}

func TestClient_IsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: http.StatusNotFound}))
	assert.False(t, IsNotFound(&Error{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))

	wrapped := fmt.Errorf("delete case c-1: %w", &Error{StatusCode: http.StatusNotFound, Detail: "Case not found"})
	assert.True(t, IsNotFound(wrapped))
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 20*time.Millisecond).ListUsers(context.Background())
	assert.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New("http://backend:8080/", 0)
	assert.Equal(t, "http://backend:8080", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}
