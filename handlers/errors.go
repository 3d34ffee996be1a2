package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/middleware"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// detail writes the API error body
func detail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"detail": message})
}

// respondError maps a service error to its status code. Validation
// problems are 400, missing targets 404, everything else 500.
func respondError(c echo.Context, err error, action string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return detail(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrAttorneyNotFound),
		errors.Is(err, services.ErrCaseNotFound),
		errors.Is(err, services.ErrCourtDateNotFound),
		errors.Is(err, services.ErrDocumentNotFound):
		return detail(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("[WARNING] Failed to %s: %v", action, err)
		return detail(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

// getConfig returns the config set by the server, or an empty one in tests
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get(middleware.ContextKeyConfig).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

// officeLocation is where court dates without an offset are placed
func officeLocation(c echo.Context) *time.Location {
	return getConfig(c).Location()
}
