package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Priorities lists the valid priorities in display order
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// CourtDate is a scheduled hearing or appearance for a case
type CourtDate struct {
	ID        string    `gorm:"size:36;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID      string    `gorm:"size:36;not null;index" json:"case_id"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CourtName   string    `gorm:"not null" json:"court_name"`
	JudgeName   *string   `json:"judge_name"`
	HearingType string    `gorm:"not null" json:"hearing_type"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	Priority    string    `gorm:"not null;default:medium" json:"priority"`

	// Reminder tracking (not part of the API contract)
	ReminderSentAt *time.Time `json:"-"`
}

// BeforeCreate hook to generate UUID and default the priority
func (d *CourtDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	return nil
}

// TableName specifies the table name for CourtDate model
func (CourtDate) TableName() string {
	return "court_dates"
}

// CourtDateInput is the body of POST /api/court-dates and the Court Dates
// screen form. Date is kept as text so the HTML datetime-local value can be
// forwarded verbatim.
type CourtDateInput struct {
	CaseID      string `json:"case_id" form:"case_id"`
	Date        string `json:"date" form:"date"`
	CourtName   string `json:"court_name" form:"court_name"`
	JudgeName   string `json:"judge_name" form:"judge_name"`
	HearingType string `json:"hearing_type" form:"hearing_type"`
	Notes       string `json:"notes" form:"notes"`
	Priority    string `json:"priority" form:"priority"`
}

// DateInputLayout is the layout of an HTML datetime-local value
const DateInputLayout = "2006-01-02T15:04"

// NewCourtDateInput returns the defaults used by the create form
func NewCourtDateInput() CourtDateInput {
	return CourtDateInput{Priority: PriorityMedium}
}

// Input returns the editable fields of the court date
func (d *CourtDate) Input() CourtDateInput {
	return CourtDateInput{
		CaseID:      d.CaseID,
		Date:        d.Date.Format(DateInputLayout),
		CourtName:   d.CourtName,
		JudgeName:   Deref(d.JudgeName),
		HearingType: d.HearingType,
		Notes:       Deref(d.Notes),
		Priority:    d.Priority,
	}
}

// IsValidPriority checks if the priority is valid
func IsValidPriority(priority string) bool {
	return contains(Priorities, priority)
}
