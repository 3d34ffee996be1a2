package handlers

import (
	"net/http"

	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetClients returns all clients
func GetClients(c echo.Context) error {
	clients, err := services.ListClients(db.DB)
	if err != nil {
		return respondError(c, err, "fetch clients")
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClient returns a single client by ID
func GetClient(c echo.Context) error {
	client, err := services.GetClient(db.DB, c.Param("id"))
	if err != nil {
		return respondError(c, err, "fetch client")
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClient creates a new client
func CreateClient(c echo.Context) error {
	var input models.ClientInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	client, err := services.CreateClient(db.DB, input)
	if err != nil {
		return respondError(c, err, "create client")
	}
	return c.JSON(http.StatusOK, client)
}

// UpdateClient replaces the editable fields of a client
func UpdateClient(c echo.Context) error {
	var input models.ClientInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	client, err := services.UpdateClient(db.DB, c.Param("id"), input)
	if err != nil {
		return respondError(c, err, "update client")
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Cases referencing it are kept and show
// an unknown client.
func DeleteClient(c echo.Context) error {
	if err := services.DeleteClient(db.DB, c.Param("id")); err != nil {
		return respondError(c, err, "delete client")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
