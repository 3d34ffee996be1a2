package handlers

import (
	"net/http"

	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetUsers returns all users
func GetUsers(c echo.Context) error {
	users, err := services.ListUsers(db.DB)
	if err != nil {
		return respondError(c, err, "fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by ID
func GetUser(c echo.Context) error {
	user, err := services.GetUser(db.DB, c.Param("id"))
	if err != nil {
		return respondError(c, err, "fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser creates a new user. Users cannot be edited or removed.
func CreateUser(c echo.Context) error {
	var input models.UserInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	user, err := services.CreateUser(db.DB, input)
	if err != nil {
		return respondError(c, err, "create user")
	}
	return c.JSON(http.StatusOK, user)
}
