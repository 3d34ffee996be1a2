package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"case_desk_app_go/middleware"
	"case_desk_app_go/models"
	"case_desk_app_go/screens"
	"case_desk_app_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Backend is everything the web screens read from and write to. The
// server wires the REST client; tests wire an in-memory fake.
type Backend interface {
	screens.CasesAPI
	screens.ClientsAPI
	screens.CourtDatesAPI
	screens.UsersAPI
	screens.DashboardAPI
}

// Web serves the server-rendered desk. Every request builds its screen
// from scratch, so each page view is a fresh fetch from the backend.
type Web struct {
	API Backend
}

// NewWeb creates the page handlers over api
func NewWeb(api Backend) *Web {
	return &Web{API: api}
}

// entityScreen is the part of a screen controller the page handlers drive
type entityScreen[F any] interface {
	Load(ctx context.Context) error
	SetFilter(value string)
	SetSearch(q string)
	OpenCreate()
	OpenEdit(id string) error
	Submit(ctx context.Context, form F) error
	RequestDelete(id string) error
	ConfirmDelete(ctx context.Context) error
	Notices() []screens.Notice
}

// resourcePage binds one entity screen to its routes and template
type resourcePage[S entityScreen[F], F any] struct {
	web    *Web
	title  string
	path   string
	screen func(api Backend, opts ...screens.Option) S
	render func(layout pages.Layout, s S) templ.Component
}

func (p resourcePage[S, F]) register(g *echo.Group) {
	g.GET(p.path, p.list)
	g.GET(p.path+"/new", p.newForm)
	g.POST(p.path, p.create)
	g.GET(p.path+"/:id/edit", p.edit)
	g.POST(p.path+"/:id", p.update)
	g.GET(p.path+"/:id/delete", p.confirmDelete)
	g.POST(p.path+"/:id/delete", p.delete)
}

// load builds the screen and fetches its records. A failed fetch leaves
// an error notice on the screen and the page still renders.
func (p resourcePage[S, F]) load(c echo.Context) S {
	s := p.screen(p.web.API, officeClock(c))
	s.Load(c.Request().Context())
	s.SetFilter(c.QueryParam("filter"))
	s.SetSearch(c.QueryParam("q"))
	return s
}

func (p resourcePage[S, F]) show(c echo.Context, s S) error {
	layout := p.web.layout(c, p.title, p.path, s.Notices())
	return renderPage(c, p.render(layout, s))
}

// done stores the notices for the next page and redirects to the list
func (p resourcePage[S, F]) done(c echo.Context, s S) error {
	middleware.SetFlash(c, s.Notices())
	return c.Redirect(http.StatusSeeOther, p.path)
}

func (p resourcePage[S, F]) list(c echo.Context) error {
	return p.show(c, p.load(c))
}

func (p resourcePage[S, F]) newForm(c echo.Context) error {
	s := p.load(c)
	s.OpenCreate()
	return p.show(c, s)
}

// edit opens the form, or shows why it cannot be opened
func (p resourcePage[S, F]) edit(c echo.Context) error {
	s := p.load(c)
	s.OpenEdit(c.Param("id"))
	return p.show(c, s)
}

func (p resourcePage[S, F]) create(c echo.Context) error {
	var form F
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	s := p.load(c)
	s.OpenCreate()
	if err := s.Submit(c.Request().Context(), form); err != nil {
		return p.show(c, s)
	}
	return p.done(c, s)
}

func (p resourcePage[S, F]) update(c echo.Context) error {
	var form F
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	s := p.load(c)
	if err := s.OpenEdit(c.Param("id")); err != nil {
		return p.show(c, s)
	}
	if err := s.Submit(c.Request().Context(), form); err != nil {
		return p.show(c, s)
	}
	return p.done(c, s)
}

func (p resourcePage[S, F]) confirmDelete(c echo.Context) error {
	s := p.load(c)
	s.RequestDelete(c.Param("id"))
	return p.show(c, s)
}

func (p resourcePage[S, F]) delete(c echo.Context) error {
	s := p.load(c)
	if err := s.RequestDelete(c.Param("id")); err != nil {
		return p.done(c, s)
	}
	s.ConfirmDelete(c.Request().Context())
	return p.done(c, s)
}

// Register mounts the desk pages on g
func (w *Web) Register(g *echo.Group) {
	g.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/dashboard")
	})
	g.GET("/dashboard", w.DashboardPage)
	g.POST("/sidebar/toggle", ToggleSidebar)

	resourcePage[*screens.CasesScreen, models.CaseInput]{
		web: w, title: "Cases", path: "/cases",
		screen: func(api Backend, opts ...screens.Option) *screens.CasesScreen {
			return screens.NewCasesScreen(api, opts...)
		},
		render: pages.CasesPage,
	}.register(g)

	resourcePage[*screens.ClientsScreen, models.ClientInput]{
		web: w, title: "Clients", path: "/clients",
		screen: func(api Backend, opts ...screens.Option) *screens.ClientsScreen {
			return screens.NewClientsScreen(api, opts...)
		},
		render: pages.ClientsPage,
	}.register(g)

	resourcePage[*screens.CourtDatesScreen, models.CourtDateInput]{
		web: w, title: "Court Dates", path: "/court-dates",
		screen: func(api Backend, opts ...screens.Option) *screens.CourtDatesScreen {
			return screens.NewCourtDatesScreen(api, opts...)
		},
		render: pages.CourtDatesPage,
	}.register(g)

	resourcePage[*screens.UsersScreen, models.UserInput]{
		web: w, title: "Users", path: "/users",
		screen: func(api Backend, opts ...screens.Option) *screens.UsersScreen {
			return screens.NewUsersScreen(api, opts...)
		},
		render: pages.UsersPage,
	}.register(g)
}

// DashboardPage shows the counters and the next five court dates
func (w *Web) DashboardPage(c echo.Context) error {
	d := screens.NewDashboard(w.API)
	d.Load(c.Request().Context())
	return renderPage(c, pages.Dashboard(w.layout(c, "Dashboard", "/dashboard", d.Notices()), d))
}

// ToggleSidebar flips the collapsed state and returns to the page it was
// posted from
func ToggleSidebar(c echo.Context) error {
	nav := screens.NewNavigation("", middleware.IsSidebarCollapsed(c), middleware.GetCurrentUser(c))
	nav.Toggle()
	middleware.SetSidebarCookie(c, nav.Collapsed)

	back := c.FormValue("return")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/dashboard"
	}
	return c.Redirect(http.StatusSeeOther, back)
}

// layout assembles the shell of a page. Notices stored by the previous
// redirect come first.
func (w *Web) layout(c echo.Context, title, path string, notices []screens.Notice) pages.Layout {
	return pages.Layout{
		Title:    title,
		Nav:      screens.NewNavigation(path, middleware.IsSidebarCollapsed(c), middleware.GetCurrentUser(c)),
		Notices:  append(middleware.PopFlash(c), notices...),
		CSRF:     middleware.GetCSRFToken(c),
		Nonce:    middleware.GetNonce(c.Request().Context()),
		Location: officeLocation(c),
	}
}

// officeClock reads the time in the office location, so date filters and
// displayed times agree with how entered dates are parsed
func officeClock(c echo.Context) screens.Option {
	loc := officeLocation(c)
	return screens.WithClock(func() time.Time { return time.Now().In(loc) })
}

func renderPage(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}
