package handlers

import (
	"net/http"
	"time"

	"case_desk_app_go/db"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetDashboardStats returns the dashboard counters
func GetDashboardStats(c echo.Context) error {
	stats, err := services.GetDashboardStats(db.DB, time.Now())
	if err != nil {
		return respondError(c, err, "fetch dashboard stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// GetUpcomingCourtDates returns the court dates of the next 30 days with
// their case title and number
func GetUpcomingCourtDates(c echo.Context) error {
	dates, err := services.GetUpcomingCourtDates(db.DB, time.Now())
	if err != nil {
		return respondError(c, err, "fetch upcoming court dates")
	}
	return c.JSON(http.StatusOK, dates)
}
