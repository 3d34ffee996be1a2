package middleware

import (
	"errors"
	"log"
	"net/http"

	"case_desk_app_go/session"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser is the context key for the session identity
	ContextKeyUser = "user"
	// ContextKeyConfig is the context key for the app config
	ContextKeyConfig = "config"
)

// InjectSession resolves the current identity and stores it on the context.
// A provider that cannot resolve anyone fails the request.
func InjectSession(provider session.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := provider.Current(c.Request().Context())
			if err != nil {
				if errors.Is(err, session.ErrNoIdentity) {
					return echo.NewHTTPError(http.StatusUnauthorized, "No session user configured")
				}
				log.Printf("[WARNING] Failed to resolve session user: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve session user")
			}

			c.Set(ContextKeyUser, identity)
			return next(c)
		}
	}
}

// GetCurrentUser retrieves the session identity from the context
func GetCurrentUser(c echo.Context) session.Identity {
	identity, ok := c.Get(ContextKeyUser).(session.Identity)
	if !ok {
		return session.Identity{}
	}
	return identity
}
