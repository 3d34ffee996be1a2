package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// ListCases returns every case, newest first
func ListCases(db *gorm.DB) ([]models.Case, error) {
	var cases []models.Case
	if err := db.Order("created_at DESC").Limit(ListLimit).Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}
	return cases, nil
}

// GetCase fetches a single case by id
func GetCase(db *gorm.DB, id string) (*models.Case, error) {
	var caseRecord models.Case
	if err := db.First(&caseRecord, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	return &caseRecord, nil
}

// CreateCase validates the input, checks that the client and the assigned
// attorney exist, and stores the case
func CreateCase(db *gorm.DB, input models.CaseInput) (*models.Case, error) {
	input.CaseNumber = strings.TrimSpace(input.CaseNumber)
	input.Title = strings.TrimSpace(input.Title)
	input.CourtName = strings.TrimSpace(input.CourtName)
	if input.Status == "" {
		input.Status = models.CaseStatusActive
	}

	if err := firstError(
		required("case_number", input.CaseNumber),
		required("title", input.Title),
		required("case_type", input.CaseType),
		required("client_id", input.ClientID),
		required("assigned_attorney", input.AssignedAttorney),
		required("court_name", input.CourtName),
	); err != nil {
		return nil, err
	}
	if !models.IsValidCaseType(input.CaseType) {
		return nil, invalid("case_type", input.CaseType)
	}
	if !models.IsValidCaseStatus(input.Status) {
		return nil, invalid("status", input.Status)
	}

	if err := ensureExists(db, &models.Client{}, input.ClientID, ErrClientNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists(db, &models.User{}, input.AssignedAttorney, ErrAttorneyNotFound); err != nil {
		return nil, err
	}

	caseRecord := &models.Case{
		CaseNumber:       input.CaseNumber,
		Title:            input.Title,
		CaseType:         input.CaseType,
		Status:           input.Status,
		ClientID:         input.ClientID,
		AssignedAttorney: input.AssignedAttorney,
		CourtName:        input.CourtName,
		JudgeName:        models.OptionalString(input.JudgeName),
		Description:      sanitizeOptional(input.Description),
	}
	if err := db.Create(caseRecord).Error; err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return caseRecord, nil
}

// UpdateCase applies a partial update. Case number, type and client are
// fixed once the case exists.
func UpdateCase(db *gorm.DB, id string, update models.CaseUpdate) (*models.Case, error) {
	caseRecord, err := GetCase(db, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) != "" {
		caseRecord.Title = strings.TrimSpace(*update.Title)
	}
	if update.Status != nil && *update.Status != "" {
		if !models.IsValidCaseStatus(*update.Status) {
			return nil, invalid("status", *update.Status)
		}
		caseRecord.Status = *update.Status
	}
	if update.AssignedAttorney != nil && *update.AssignedAttorney != "" {
		if err := ensureExists(db, &models.User{}, *update.AssignedAttorney, ErrAttorneyNotFound); err != nil {
			return nil, err
		}
		caseRecord.AssignedAttorney = *update.AssignedAttorney
	}
	if update.CourtName != nil && strings.TrimSpace(*update.CourtName) != "" {
		caseRecord.CourtName = strings.TrimSpace(*update.CourtName)
	}
	if update.JudgeName != nil {
		caseRecord.JudgeName = models.OptionalString(*update.JudgeName)
	}
	if update.Description != nil {
		caseRecord.Description = sanitizeOptional(*update.Description)
	}
	caseRecord.UpdatedAt = time.Now().UTC()

	if err := db.Save(caseRecord).Error; err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return caseRecord, nil
}

// DeleteCase removes a case together with its court dates and documents.
// Stored document bytes are removed after the transaction commits.
func DeleteCase(ctx context.Context, db *gorm.DB, storage StorageProvider, id string) error {
	var documents []models.Document

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Case{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete case: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCaseNotFound
		}

		if err := tx.Delete(&models.CourtDate{}, "case_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete court dates: %w", err)
		}

		if err := tx.Where("case_id = ?", id).Find(&documents).Error; err != nil {
			return fmt.Errorf("failed to fetch documents: %w", err)
		}
		if err := tx.Delete(&models.Document{}, "case_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete documents: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, doc := range documents {
		removeStoredDocument(ctx, storage, doc)
	}
	if len(documents) > 0 {
		log.Printf("[INFO] Case %s deleted with %d documents", id, len(documents))
	}
	return nil
}

// ensureExists returns notFound when no row of model has the given id
func ensureExists(db *gorm.DB, model interface{}, id string, notFound error) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check reference: %w", err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
