package pages

import (
	"case_desk_app_go/models"
	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

// StatCard is one counter on the dashboard
type StatCard struct {
	Label string
	Value int64
	Link  string
}

// DashboardPage is the dashboard model
type DashboardPage struct {
	Layout

	Cards    []StatCard
	Upcoming []models.UpcomingCourtDate
}

// Dashboard renders the dashboard
func Dashboard(layout Layout, d *screens.Dashboard) templ.Component {
	return render(dashboardTemplate, BuildDashboardPage(layout, d))
}

// BuildDashboardPage turns the dashboard state into the page model
func BuildDashboardPage(layout Layout, d *screens.Dashboard) DashboardPage {
	return DashboardPage{
		Layout: layout,
		Cards: []StatCard{
			{Label: "Total Cases", Value: d.Stats.TotalCases, Link: "/cases"},
			{Label: "Active Cases", Value: d.Stats.ActiveCases, Link: "/cases?filter=active"},
			{Label: "Upcoming Court Dates", Value: d.Stats.UpcomingCourtDates, Link: "/court-dates"},
			{Label: "Total Clients", Value: d.Stats.TotalClients, Link: "/clients"},
		},
		Upcoming: d.Upcoming,
	}
}
