package services

import (
	"fmt"
	"time"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

const (
	// UpcomingWindow is how far ahead the dashboard looks for court dates
	UpcomingWindow = 30 * 24 * time.Hour
	// UpcomingLimit caps the upcoming court dates returned to the dashboard
	UpcomingLimit = 50
)

// GetDashboardStats counts cases, active cases, court dates at or after now
// and clients
func GetDashboardStats(db *gorm.DB, now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.Model(&models.Case{}).Count(&stats.TotalCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}
	if err := db.Model(&models.Case{}).Where("status = ?", models.CaseStatusActive).Count(&stats.ActiveCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count active cases: %w", err)
	}
	if err := db.Model(&models.CourtDate{}).Where("date >= ?", now.UTC()).Count(&stats.UpcomingCourtDates).Error; err != nil {
		return nil, fmt.Errorf("failed to count court dates: %w", err)
	}
	if err := db.Model(&models.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	return stats, nil
}

// GetUpcomingCourtDates returns court dates in [now, now+UpcomingWindow],
// earliest first, enriched with the title and number of their case
func GetUpcomingCourtDates(db *gorm.DB, now time.Time) ([]models.UpcomingCourtDate, error) {
	from := now.UTC()
	to := from.Add(UpcomingWindow)

	var dates []models.CourtDate
	if err := db.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Limit(UpcomingLimit).
		Find(&dates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming court dates: %w", err)
	}

	caseIDs := make([]string, 0, len(dates))
	for _, d := range dates {
		caseIDs = append(caseIDs, d.CaseID)
	}

	casesByID := make(map[string]models.Case, len(caseIDs))
	if len(caseIDs) > 0 {
		var cases []models.Case
		if err := db.Where("id IN ?", caseIDs).Find(&cases).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch cases: %w", err)
		}
		for _, c := range cases {
			casesByID[c.ID] = c
		}
	}

	upcoming := make([]models.UpcomingCourtDate, 0, len(dates))
	for _, d := range dates {
		item := models.UpcomingCourtDate{CourtDate: d}
		if c, ok := casesByID[d.CaseID]; ok {
			item.CaseTitle = c.Title
			item.CaseNumber = c.CaseNumber
		}
		upcoming = append(upcoming, item)
	}
	return upcoming, nil
}
