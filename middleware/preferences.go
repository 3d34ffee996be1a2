package middleware

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/screens"

	"github.com/labstack/echo/v4"
)

const (
	// SidebarCookieName remembers the collapsed state of the navigation
	SidebarCookieName = "sidebar"
	// FlashCookieName carries notices across a redirect
	FlashCookieName = "flash"

	sidebarCollapsed = "collapsed"
)

// IsSidebarCollapsed reads the sidebar preference from the request
func IsSidebarCollapsed(c echo.Context) bool {
	cookie, err := c.Cookie(SidebarCookieName)
	return err == nil && cookie.Value == sidebarCollapsed
}

// SetSidebarCookie persists the sidebar preference for a year
func SetSidebarCookie(c echo.Context, collapsed bool) {
	value := "expanded"
	if collapsed {
		value = sidebarCollapsed
	}
	cookie := newCookie(c, SidebarCookieName, value)
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	c.SetCookie(cookie)
}

// SetFlash stores notices to be shown by the next page render
func SetFlash(c echo.Context, notices []screens.Notice) {
	if len(notices) == 0 {
		return
	}
	data, err := json.Marshal(notices)
	if err != nil {
		log.Printf("[WARNING] Failed to encode flash notices: %v", err)
		return
	}
	c.SetCookie(newCookie(c, FlashCookieName, base64.RawURLEncoding.EncodeToString(data)))
}

// PopFlash returns the stored notices and clears the cookie
func PopFlash(c echo.Context) []screens.Notice {
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	expired := newCookie(c, FlashCookieName, "")
	expired.MaxAge = -1
	c.SetCookie(expired)

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var notices []screens.Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil
	}
	return notices
}

func newCookie(c echo.Context, name, value string) *http.Cookie {
	cookie := new(http.Cookie)
	cookie.Name = name
	cookie.Value = value
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode

	// Get config from context if available
	if cfg, ok := c.Get(ContextKeyConfig).(*config.Config); ok && cfg.IsProduction() {
		cookie.Secure = true
	}
	return cookie
}
