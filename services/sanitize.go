package services

import (
	"html"
	"strings"

	"case_desk_app_go/models"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from free text entered in forms. The
// result is plain text: entities the policy writes are decoded again, since
// the pages escape on output.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// sanitizeOptional sanitizes free text and maps blank values to nil
func sanitizeOptional(s string) *string {
	return models.OptionalString(SanitizeText(s))
}
