package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"case_desk_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockFileHeader(t *testing.T, filename string, content []byte, contentType string) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestValidateDocumentUpload(t *testing.T) {
	t.Run("Valid PDF", func(t *testing.T) {
		file := createMockFileHeader(t, "test.pdf", []byte("%PDF-1.4\n"), "application/pdf")
		assert.NoError(t, ValidateDocumentUpload(file))
	})

	t.Run("Valid DOCX", func(t *testing.T) {
		file := createMockFileHeader(t, "Motion.DOCX", []byte("PK\x03\x04"), "")
		assert.NoError(t, ValidateDocumentUpload(file))
	})

	t.Run("File too large", func(t *testing.T) {
		file := createMockFileHeader(t, "large.pdf", []byte("%PDF"), "application/pdf")
		file.Size = MaxDocumentSize + 1
		err := ValidateDocumentUpload(file)
		assert.EqualError(t, err, "file: file too large")
	})

	t.Run("Invalid extension", func(t *testing.T) {
		file := createMockFileHeader(t, "test.exe", []byte("MZ"), "application/x-msdownload")
		err := ValidateDocumentUpload(file)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, err.Error(), "file type not allowed")
	})
}

func TestUploadDocumentFile(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)
	storage := NewLocalStorage(t.TempDir())
	ctx := context.Background()

	meta := models.DocumentInput{
		Category:   models.DocumentCategoryEvidence,
		UploadedBy: f.attorney.ID,
		CaseID:     f.caseRec.ID,
	}

	t.Run("Stores the file", func(t *testing.T) {
		content := []byte("%PDF-1.4 exhibit A")
		doc, err := UploadDocumentFile(ctx, db, storage, meta, createMockFileHeader(t, "exhibit-a.pdf", content, "application/pdf"))
		require.NoError(t, err)
		assert.Equal(t, "exhibit-a.pdf", doc.Filename)
		assert.Equal(t, "application/pdf", doc.FileType)
		assert.Equal(t, int64(len(content)), doc.FileSize)

		reader, err := storage.Get(ctx, doc.StorageKey)
		require.NoError(t, err)
		defer reader.Close()
		stored, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, content, stored)
	})

	t.Run("Sniffs missing type", func(t *testing.T) {
		doc, err := UploadDocumentFile(ctx, db, storage, meta, createMockFileHeader(t, "notes.txt", []byte("plain notes"), ""))
		require.NoError(t, err)
		assert.Equal(t, "text/plain; charset=utf-8", doc.FileType)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := UploadDocumentFile(ctx, db, storage, meta, nil)
		assert.EqualError(t, err, "file: field required")
	})

	t.Run("Unknown case", func(t *testing.T) {
		other := meta
		other.CaseID = "missing"
		_, err := UploadDocumentFile(ctx, db, storage, other, createMockFileHeader(t, "a.pdf", []byte("%PDF"), "application/pdf"))
		assert.True(t, errors.Is(err, ErrCaseNotFound))
	})
}
