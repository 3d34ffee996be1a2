package services

import (
	"fmt"
	"strings"
	"time"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// ListCourtDates returns every court date, earliest first
func ListCourtDates(db *gorm.DB) ([]models.CourtDate, error) {
	var dates []models.CourtDate
	if err := db.Order("date ASC").Limit(ListLimit).Find(&dates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch court dates: %w", err)
	}
	return dates, nil
}

// ListCourtDatesByCase returns the court dates of one case, earliest first
func ListCourtDatesByCase(db *gorm.DB, caseID string) ([]models.CourtDate, error) {
	var dates []models.CourtDate
	if err := db.Where("case_id = ?", caseID).Order("date ASC").Limit(ListLimit).Find(&dates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch court dates: %w", err)
	}
	return dates, nil
}

// CreateCourtDate validates the input, checks the case exists and stores
// the court date. Zone-less dates are read in loc.
func CreateCourtDate(db *gorm.DB, input models.CourtDateInput, loc *time.Location) (*models.CourtDate, error) {
	input.CourtName = strings.TrimSpace(input.CourtName)
	input.HearingType = strings.TrimSpace(input.HearingType)
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	if err := firstError(
		required("case_id", input.CaseID),
		required("date", input.Date),
		required("court_name", input.CourtName),
		required("hearing_type", input.HearingType),
	); err != nil {
		return nil, err
	}
	if !models.IsValidPriority(input.Priority) {
		return nil, invalid("priority", input.Priority)
	}

	date, err := ParseDateTime(input.Date, loc)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: err.Error()}
	}

	if err := ensureExists(db, &models.Case{}, input.CaseID, ErrCaseNotFound); err != nil {
		return nil, err
	}

	courtDate := &models.CourtDate{
		CaseID:      input.CaseID,
		Date:        date.UTC(),
		CourtName:   input.CourtName,
		JudgeName:   models.OptionalString(input.JudgeName),
		HearingType: input.HearingType,
		Notes:       sanitizeOptional(input.Notes),
		Priority:    input.Priority,
	}
	if err := db.Create(courtDate).Error; err != nil {
		return nil, fmt.Errorf("failed to create court date: %w", err)
	}
	return courtDate, nil
}

// DeleteCourtDate removes a court date
func DeleteCourtDate(db *gorm.DB, id string) error {
	result := db.Delete(&models.CourtDate{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete court date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCourtDateNotFound
	}
	return nil
}
