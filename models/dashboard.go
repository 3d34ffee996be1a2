package models

// DashboardStats holds the counters shown on the dashboard
type DashboardStats struct {
	TotalCases         int64 `json:"total_cases"`
	ActiveCases        int64 `json:"active_cases"`
	UpcomingCourtDates int64 `json:"upcoming_court_dates"`
	TotalClients       int64 `json:"total_clients"`
}

// UpcomingCourtDate is a court date enriched with its case title and number
type UpcomingCourtDate struct {
	CourtDate
	CaseTitle  string `json:"case_title,omitempty"`
	CaseNumber string `json:"case_number,omitempty"`
}
