package services

import (
	"errors"
	"fmt"
	"strings"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// ListClients returns every client
func ListClients(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	if err := db.Order("created_at ASC").Limit(ListLimit).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}

// GetClient fetches a single client by id
func GetClient(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return &client, nil
}

// CreateClient validates and stores a new client
func CreateClient(db *gorm.DB, input models.ClientInput) (*models.Client, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := required("name", input.Name); err != nil {
		return nil, err
	}

	client := &models.Client{Name: input.Name}
	applyClientInput(client, input)

	if err := db.Create(client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// UpdateClient replaces the editable fields of a client
func UpdateClient(db *gorm.DB, id string, input models.ClientInput) (*models.Client, error) {
	client, err := GetClient(db, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		client.Name = name
	}
	applyClientInput(client, input)

	if err := db.Save(client).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client. Cases referencing the client are left
// untouched and resolve to "Unknown Client" in the UI.
func DeleteClient(db *gorm.DB, id string) error {
	result := db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func applyClientInput(client *models.Client, input models.ClientInput) {
	client.Email = models.OptionalString(input.Email)
	client.Phone = models.OptionalString(input.Phone)
	client.Address = sanitizeOptional(input.Address)
}
