package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User role constants
const (
	RoleAttorney  = "attorney"
	RoleJudge     = "judge"
	RoleClerk     = "clerk"
	RoleParalegal = "paralegal"
)

// UserRoles lists the valid roles in display order
var UserRoles = []string{RoleAttorney, RoleJudge, RoleClerk, RoleParalegal}

type User struct {
	ID        string    `gorm:"size:36;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string  `gorm:"not null" json:"name"`
	Email string  `gorm:"not null;index" json:"email"`
	Role  string  `gorm:"not null;default:attorney" json:"role"` // attorney, judge, clerk, paralegal
	Phone *string `json:"phone"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsAttorney checks if the user can be assigned to cases
func (u *User) IsAttorney() bool {
	return u.Role == RoleAttorney
}

// UserInput is the body of POST /api/users and the Users screen form
type UserInput struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Role  string `json:"role" form:"role"`
	Phone string `json:"phone" form:"phone"`
}

// NewUserInput returns the defaults used by the create form
func NewUserInput() UserInput {
	return UserInput{Role: RoleAttorney}
}

// Input returns the editable fields of the user
func (u *User) Input() UserInput {
	return UserInput{
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Phone: Deref(u.Phone),
	}
}

// IsValidUserRole checks if the role is valid
func IsValidUserRole(role string) bool {
	return contains(UserRoles, role)
}
