package services

import (
	"errors"
	"fmt"
	"strings"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// ListLimit caps every collection endpoint
const ListLimit = 1000

// ListUsers returns every user
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at ASC").Limit(ListLimit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetUser fetches a single user by id
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// CreateUser validates and stores a new user
func CreateUser(db *gorm.DB, input models.UserInput) (*models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := firstError(required("name", input.Name), required("email", input.Email), required("role", input.Role)); err != nil {
		return nil, err
	}
	if !models.IsValidUserRole(input.Role) {
		return nil, invalid("role", input.Role)
	}

	user := &models.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
		Phone: models.OptionalString(input.Phone),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
