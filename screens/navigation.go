package screens

import "case_desk_app_go/session"

// NavItem is one entry of the side panel
type NavItem struct {
	Label  string
	Path   string
	Icon   string
	Active bool
}

// NavRoutes are the sections of the desk, in display order
var NavRoutes = []NavItem{
	{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
	{Label: "Cases", Path: "/cases", Icon: "briefcase"},
	{Label: "Clients", Path: "/clients", Icon: "users"},
	{Label: "Court Dates", Path: "/court-dates", Icon: "calendar"},
	{Label: "Users", Path: "/users", Icon: "user-check"},
}

// Navigation is the side panel state for one page
type Navigation struct {
	Current   string
	Collapsed bool
	User      session.Identity
}

// NewNavigation builds the panel for the page at current
func NewNavigation(current string, collapsed bool, user session.Identity) *Navigation {
	return &Navigation{Current: current, Collapsed: collapsed, User: user}
}

// Items returns the routes with the exact path match marked active
func (n *Navigation) Items() []NavItem {
	items := make([]NavItem, len(NavRoutes))
	for i, item := range NavRoutes {
		item.Active = item.Path == n.Current
		items[i] = item
	}
	return items
}

// Toggle flips between the collapsed and expanded panel
func (n *Navigation) Toggle() {
	n.Collapsed = !n.Collapsed
}

// SidebarWidth is the width class of the panel
func (n *Navigation) SidebarWidth() string {
	if n.Collapsed {
		return "w-20"
	}
	return "w-64"
}

// ContentMargin is the margin class of the content next to the panel
func (n *Navigation) ContentMargin() string {
	if n.Collapsed {
		return "ml-20"
	}
	return "ml-64"
}
