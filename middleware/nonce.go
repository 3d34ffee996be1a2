package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"
)

type nonceKey struct{}

// TailwindCDN serves the stylesheet compiler the desk pages load
const TailwindCDN = "https://cdn.tailwindcss.com"

var randomBytes = rand.Read

// GenerateNonce returns a fresh base64url token for one page response
func GenerateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := randomBytes(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ContentPolicy builds the Content-Security-Policy of the desk pages.
// Inline scripts run only with the nonce; without one, only same-origin
// scripts and the Tailwind CDN are allowed. Forms may only post back to
// the desk.
func ContentPolicy(nonce string) string {
	scripts := []string{"'self'"}
	if nonce != "" {
		scripts = append(scripts, "'nonce-"+nonce+"'")
	}
	scripts = append(scripts, TailwindCDN)

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(scripts, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}
	return strings.Join(directives, "; ")
}

// CSPNonce gives every response its own script nonce and the matching
// policy header. The nonce is readable by handlers through GetNonce.
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce, inline scripts disabled: %v", err)
				nonce = ""
			}

			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), nonceKey{}, nonce)))
			c.Response().Header().Set("Content-Security-Policy", ContentPolicy(nonce))
			return next(c)
		}
	}
}

// GetNonce returns the nonce of the current request, or "" outside CSPNonce
func GetNonce(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}
