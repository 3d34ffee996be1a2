package handlers

import (
	"net/http"

	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCourtDates returns all court dates, earliest first
func GetCourtDates(c echo.Context) error {
	dates, err := services.ListCourtDates(db.DB)
	if err != nil {
		return respondError(c, err, "fetch court dates")
	}
	return c.JSON(http.StatusOK, dates)
}

// GetCourtDatesByCase returns the court dates of one case
func GetCourtDatesByCase(c echo.Context) error {
	dates, err := services.ListCourtDatesByCase(db.DB, c.Param("case_id"))
	if err != nil {
		return respondError(c, err, "fetch court dates")
	}
	return c.JSON(http.StatusOK, dates)
}

// CreateCourtDate schedules a court date on an existing case
func CreateCourtDate(c echo.Context) error {
	var input models.CourtDateInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	date, err := services.CreateCourtDate(db.DB, input, officeLocation(c))
	if err != nil {
		return respondError(c, err, "create court date")
	}
	return c.JSON(http.StatusOK, date)
}

// DeleteCourtDate removes a court date. Court dates have no update route.
func DeleteCourtDate(c echo.Context) error {
	if err := services.DeleteCourtDate(db.DB, c.Param("id")); err != nil {
		return respondError(c, err, "delete court date")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Court date deleted successfully"})
}
