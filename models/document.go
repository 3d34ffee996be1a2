package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document category constants
const (
	DocumentCategoryPleading       = "pleading"
	DocumentCategoryMotion         = "motion"
	DocumentCategoryOrder          = "order"
	DocumentCategoryEvidence       = "evidence"
	DocumentCategoryCorrespondence = "correspondence"
	DocumentCategoryContract       = "contract"
	DocumentCategoryOther          = "other"
)

// DocumentCategories lists the valid document categories
var DocumentCategories = []string{
	DocumentCategoryPleading,
	DocumentCategoryMotion,
	DocumentCategoryOrder,
	DocumentCategoryEvidence,
	DocumentCategoryCorrespondence,
	DocumentCategoryContract,
	DocumentCategoryOther,
}

// Document is a file attached to a case. The bytes live in the storage
// provider under StorageKey.
type Document struct {
	ID         string    `gorm:"size:36;primarykey" json:"id"`
	UploadedAt time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`

	CaseID     string `gorm:"size:36;not null;index" json:"case_id"`
	Filename   string `gorm:"not null" json:"filename"`
	Category   string `gorm:"not null" json:"category"`
	FileType   string `gorm:"not null" json:"file_type"`
	UploadedBy string `gorm:"not null" json:"uploaded_by"`
	FileSize   int64  `gorm:"not null" json:"file_size"`
	StorageKey string `gorm:"not null" json:"-"` // Not exposed in JSON for security
}

// BeforeCreate hook to generate UUID
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Document model
func (Document) TableName() string {
	return "documents"
}

// DocumentInput is the body of POST /api/documents. FileData is base64.
type DocumentInput struct {
	Filename   string `json:"filename"`
	Category   string `json:"category"`
	FileData   string `json:"file_data"`
	FileType   string `json:"file_type"`
	UploadedBy string `json:"uploaded_by"`
	CaseID     string `json:"case_id"`
}

// IsValidDocumentCategory checks if the category is valid
func IsValidDocumentCategory(category string) bool {
	return contains(DocumentCategories, category)
}
