package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

var allowedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"}

// ValidateDocumentUpload checks the extension and size of an uploaded file
func ValidateDocumentUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxDocumentSize {
		return &ValidationError{Field: "file", Message: "file too large"}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedDocumentExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &ValidationError{Field: "file", Message: "file type not allowed. Accepted formats: PDF, DOC, DOCX, TXT, JPG, PNG"}
}

// UploadDocumentFile stores a multipart file against a case. The filename
// comes from the upload; the file type from its header, or sniffed from
// the content when the header is missing.
func UploadDocumentFile(ctx context.Context, db *gorm.DB, storage StorageProvider, input models.DocumentInput, fileHeader *multipart.FileHeader) (*models.Document, error) {
	if fileHeader == nil {
		return nil, required("file", "")
	}
	if err := ValidateDocumentUpload(fileHeader); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Read one byte past the limit so oversized bodies are caught even when
	// the header under-reports the size
	data, err := io.ReadAll(io.LimitReader(file, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	input.Filename = filepath.Base(fileHeader.Filename)
	input.FileType = fileHeader.Header.Get("Content-Type")
	if input.FileType == "" || input.FileType == "application/octet-stream" {
		input.FileType = http.DetectContentType(data)
	}
	return storeDocument(ctx, db, storage, input, data)
}
