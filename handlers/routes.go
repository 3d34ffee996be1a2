package handlers

import (
	"case_desk_app_go/config"
	"case_desk_app_go/middleware"
	"case_desk_app_go/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo app serving the REST backend under /api and
// the desk pages at the root
func NewRouter(cfg *config.Config, provider session.Provider, web *Web) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyConfig, cfg)
			return next(c)
		}
	})

	RegisterAPIRoutes(e, middleware.NewMutationRateLimiter(cfg))

	pagesGroup := e.Group("",
		middleware.CSPNonce(),
		middleware.CSRF(cfg),
		middleware.InjectSession(provider),
	)
	web.Register(pagesGroup)

	return e
}

// RegisterAPIRoutes mounts the REST backend. Mutations are rate limited.
func RegisterAPIRoutes(e *echo.Echo, limiter *middleware.RateLimiter) {
	api := e.Group("/api", limiter.Middleware())

	// Users (no update, no delete)
	api.GET("/users", GetUsers)
	api.POST("/users", CreateUser)
	api.GET("/users/:id", GetUser)

	// Clients
	api.GET("/clients", GetClients)
	api.POST("/clients", CreateClient)
	api.GET("/clients/:id", GetClient)
	api.PUT("/clients/:id", UpdateClient)
	api.DELETE("/clients/:id", DeleteClient)

	// Cases
	api.GET("/cases", GetCases)
	api.POST("/cases", CreateCase)
	api.GET("/cases/:id", GetCase)
	api.PUT("/cases/:id", UpdateCase)
	api.DELETE("/cases/:id", DeleteCase)

	// Court dates (no update)
	api.GET("/court-dates", GetCourtDates)
	api.POST("/court-dates", CreateCourtDate)
	api.GET("/court-dates/case/:case_id", GetCourtDatesByCase)
	api.DELETE("/court-dates/:id", DeleteCourtDate)

	// Documents
	api.POST("/documents", UploadDocument)
	api.POST("/documents/upload", UploadDocumentForm)
	api.GET("/documents/case/:case_id", GetDocumentsByCase)
	api.GET("/documents/:id/download", DownloadDocument)
	api.DELETE("/documents/:id", DeleteDocument)

	// Dashboard
	api.GET("/dashboard/stats", GetDashboardStats)
	api.GET("/dashboard/upcoming-dates", GetUpcomingCourtDates)

	// Reports
	api.GET("/reports/cases.xlsx", ExportCasesWorkbook)
	api.GET("/reports/docket.pdf", DocketPDF)
	api.GET("/reports/docket.ics", DocketCalendar)
}
