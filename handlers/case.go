package handlers

import (
	"net/http"

	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCases returns all cases, newest first
func GetCases(c echo.Context) error {
	cases, err := services.ListCases(db.DB)
	if err != nil {
		return respondError(c, err, "fetch cases")
	}
	return c.JSON(http.StatusOK, cases)
}

// GetCase returns a single case by ID
func GetCase(c echo.Context) error {
	caseRecord, err := services.GetCase(db.DB, c.Param("id"))
	if err != nil {
		return respondError(c, err, "fetch case")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// CreateCase creates a case for an existing client and attorney
func CreateCase(c echo.Context) error {
	var input models.CaseInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	caseRecord, err := services.CreateCase(db.DB, input)
	if err != nil {
		return respondError(c, err, "create case")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// UpdateCase applies a partial update to a case
func UpdateCase(c echo.Context) error {
	var update models.CaseUpdate
	if err := c.Bind(&update); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	caseRecord, err := services.UpdateCase(db.DB, c.Param("id"), update)
	if err != nil {
		return respondError(c, err, "update case")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// DeleteCase removes a case with its court dates and documents
func DeleteCase(c echo.Context) error {
	if err := services.DeleteCase(c.Request().Context(), db.DB, services.Storage, c.Param("id")); err != nil {
		return respondError(c, err, "delete case")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Case deleted successfully"})
}
