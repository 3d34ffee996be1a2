package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// UploadDocument stores a base64 encoded file against a case
func UploadDocument(c echo.Context) error {
	var input models.DocumentInput
	if err := c.Bind(&input); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	doc, err := services.CreateDocument(c.Request().Context(), db.DB, services.Storage, input)
	if err != nil {
		return respondError(c, err, "upload document")
	}
	return c.JSON(http.StatusOK, doc)
}

// UploadDocumentForm stores a multipart file against a case
func UploadDocumentForm(c echo.Context) error {
	input := models.DocumentInput{
		Category:   c.FormValue("category"),
		UploadedBy: c.FormValue("uploaded_by"),
		CaseID:     c.FormValue("case_id"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return detail(c, http.StatusBadRequest, "Invalid form submission")
	}

	doc, err := services.UploadDocumentFile(c.Request().Context(), db.DB, services.Storage, input, fileHeader)
	if err != nil {
		return respondError(c, err, "upload document")
	}
	return c.JSON(http.StatusOK, doc)
}

// GetDocumentsByCase lists the documents of a case, newest first
func GetDocumentsByCase(c echo.Context) error {
	docs, err := services.ListDocumentsByCase(db.DB, c.Param("case_id"))
	if err != nil {
		return respondError(c, err, "fetch documents")
	}
	return c.JSON(http.StatusOK, docs)
}

// DownloadDocument streams the stored bytes of a document
func DownloadDocument(c echo.Context) error {
	doc, reader, err := services.OpenDocument(c.Request().Context(), db.DB, services.Storage, c.Param("id"))
	if err != nil {
		return respondError(c, err, "read document")
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Stream(http.StatusOK, doc.FileType, reader)
}

// DeleteDocument removes a document and its stored bytes
func DeleteDocument(c echo.Context) error {
	if err := services.DeleteDocument(c.Request().Context(), db.DB, services.Storage, c.Param("id")); err != nil {
		return respondError(c, err, "delete document")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}
