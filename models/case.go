package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case type constants
const (
	CaseTypeCivil    = "civil"
	CaseTypeCriminal = "criminal"
)

// Case status constants
const (
	CaseStatusActive    = "active"
	CaseStatusPending   = "pending"
	CaseStatusClosed    = "closed"
	CaseStatusSettled   = "settled"
	CaseStatusDismissed = "dismissed"
)

// CaseTypes lists the valid case types in display order
var CaseTypes = []string{CaseTypeCivil, CaseTypeCriminal}

// CaseStatuses lists the valid case statuses in display order
var CaseStatuses = []string{
	CaseStatusActive,
	CaseStatusPending,
	CaseStatusClosed,
	CaseStatusSettled,
	CaseStatusDismissed,
}

// Case represents a legal case handled by the office
type Case struct {
	ID        string    `gorm:"size:36;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseNumber string `gorm:"not null;index" json:"case_number"`
	Title      string `gorm:"not null" json:"title"`
	CaseType   string `gorm:"not null" json:"case_type"`
	Status     string `gorm:"not null;default:active;index" json:"status"`

	// Client relationship
	ClientID string `gorm:"size:36;not null;index" json:"client_id"`

	// Assigned attorney (User id)
	AssignedAttorney string `gorm:"size:36;not null;index" json:"assigned_attorney"`

	CourtName   string  `gorm:"not null" json:"court_name"`
	JudgeName   *string `json:"judge_name"`
	Description *string `gorm:"type:text" json:"description"`
}

// BeforeCreate hook to generate UUID and default the status
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = CaseStatusActive
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsActive checks if the case is active
func (c *Case) IsActive() bool {
	return c.Status == CaseStatusActive
}

// CaseInput carries the editable fields of a case. It is the body of
// POST /api/cases and of the edit form on the Cases screen.
type CaseInput struct {
	CaseNumber       string `json:"case_number" form:"case_number"`
	Title            string `json:"title" form:"title"`
	CaseType         string `json:"case_type" form:"case_type"`
	Status           string `json:"status" form:"status"`
	ClientID         string `json:"client_id" form:"client_id"`
	AssignedAttorney string `json:"assigned_attorney" form:"assigned_attorney"`
	CourtName        string `json:"court_name" form:"court_name"`
	JudgeName        string `json:"judge_name" form:"judge_name"`
	Description      string `json:"description" form:"description"`
}

// NewCaseInput returns the defaults used by the create form
func NewCaseInput() CaseInput {
	return CaseInput{
		CaseType: CaseTypeCivil,
		Status:   CaseStatusActive,
	}
}

// Input returns the editable fields of the case
func (c *Case) Input() CaseInput {
	return CaseInput{
		CaseNumber:       c.CaseNumber,
		Title:            c.Title,
		CaseType:         c.CaseType,
		Status:           c.Status,
		ClientID:         c.ClientID,
		AssignedAttorney: c.AssignedAttorney,
		CourtName:        c.CourtName,
		JudgeName:        Deref(c.JudgeName),
		Description:      Deref(c.Description),
	}
}

// CaseUpdate is the partial update accepted by PUT /api/cases/:id.
// Nil fields are left untouched.
type CaseUpdate struct {
	Title            *string `json:"title"`
	Status           *string `json:"status"`
	AssignedAttorney *string `json:"assigned_attorney"`
	CourtName        *string `json:"court_name"`
	JudgeName        *string `json:"judge_name"`
	Description      *string `json:"description"`
}

// IsValidCaseType checks if the case type is valid
func IsValidCaseType(caseType string) bool {
	return contains(CaseTypes, caseType)
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	return contains(CaseStatuses, status)
}
