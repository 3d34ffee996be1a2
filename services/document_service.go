package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// MaxDocumentSize is the largest decoded document accepted (25 MB)
const MaxDocumentSize = 25 << 20

// ListDocumentsByCase returns the documents of one case, newest first
func ListDocumentsByCase(db *gorm.DB, caseID string) ([]models.Document, error) {
	var documents []models.Document
	if err := db.Where("case_id = ?", caseID).Order("uploaded_at DESC").Limit(ListLimit).Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	return documents, nil
}

// GetDocument fetches document metadata by id
func GetDocument(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return &doc, nil
}

// CreateDocument decodes the base64 payload and stores it like any other
// upload
func CreateDocument(ctx context.Context, db *gorm.DB, storage StorageProvider, input models.DocumentInput) (*models.Document, error) {
	if err := required("file_data", input.FileData); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(input.FileData)
	if err != nil {
		return nil, &ValidationError{Field: "file_data", Message: "must be base64 encoded"}
	}
	return storeDocument(ctx, db, storage, input, data)
}

// storeDocument validates the metadata, stores the bytes and records the
// document. The stored file is removed again if the insert fails.
func storeDocument(ctx context.Context, db *gorm.DB, storage StorageProvider, input models.DocumentInput, data []byte) (*models.Document, error) {
	input.Filename = strings.TrimSpace(input.Filename)
	if err := firstError(
		required("filename", input.Filename),
		required("category", input.Category),
		required("file_type", input.FileType),
		required("uploaded_by", input.UploadedBy),
		required("case_id", input.CaseID),
	); err != nil {
		return nil, err
	}
	if !models.IsValidDocumentCategory(input.Category) {
		return nil, invalid("category", input.Category)
	}
	if len(data) > MaxDocumentSize {
		return nil, &ValidationError{Field: "file_data", Message: "file too large"}
	}

	if err := ensureExists(db, &models.Case{}, input.CaseID, ErrCaseNotFound); err != nil {
		return nil, err
	}

	key := GenerateDocumentKey(input.CaseID, input.Filename)
	if err := storage.Put(ctx, key, data, input.FileType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.Document{
		CaseID:     input.CaseID,
		Filename:   input.Filename,
		Category:   input.Category,
		FileType:   input.FileType,
		UploadedBy: input.UploadedBy,
		FileSize:   int64(len(data)),
		StorageKey: key,
	}
	if err := db.Create(doc).Error; err != nil {
		if delErr := storage.Delete(ctx, key); delErr != nil {
			log.Printf("[WARNING] Failed to remove orphaned document %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// OpenDocument returns the metadata and a reader over the stored bytes
func OpenDocument(ctx context.Context, db *gorm.DB, storage StorageProvider, id string) (*models.Document, io.ReadCloser, error) {
	doc, err := GetDocument(db, id)
	if err != nil {
		return nil, nil, err
	}
	reader, err := storage.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, reader, nil
}

// DeleteDocument removes the metadata and then the stored bytes
func DeleteDocument(ctx context.Context, db *gorm.DB, storage StorageProvider, id string) error {
	doc, err := GetDocument(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Document{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	removeStoredDocument(ctx, storage, *doc)
	return nil
}

// removeStoredDocument deletes the bytes behind a document, logging failures
func removeStoredDocument(ctx context.Context, storage StorageProvider, doc models.Document) {
	if storage == nil {
		return
	}
	if err := storage.Delete(ctx, doc.StorageKey); err != nil {
		log.Printf("[WARNING] Failed to delete stored document %s: %v", doc.StorageKey, err)
	}
}
