package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"log"
	"strings"
	texttemplate "text/template"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode - not sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

// CourtDateReminderData feeds the reminder templates
type CourtDateReminderData struct {
	AttorneyName string
	Dates        []models.UpcomingCourtDate
}

var reminderFuncs = map[string]interface{}{
	"datetime": func(t time.Time) string { return t.Format("Monday, January 2, 2006 at 3:04 PM") },
	"upper":    strings.ToUpper,
}

var reminderText = texttemplate.Must(texttemplate.New("reminder.txt").Funcs(reminderFuncs).Parse(
	`Hello {{ .AttorneyName }},

You have {{ len .Dates }} court date(s) in the next 24 hours:
{{ range .Dates }}
- {{ datetime .Date }}: {{ .HearingType }} ({{ upper .Priority }})
  {{ .CaseNumber }} {{ .CaseTitle }}
  {{ .CourtName }}
{{ end }}`))

var reminderHTML = htmltemplate.Must(htmltemplate.New("reminder.html").Funcs(reminderFuncs).Parse(
	`<p>Hello {{ .AttorneyName }},</p>
<p>You have {{ len .Dates }} court date(s) in the next 24 hours:</p>
<ul>
{{ range .Dates }}<li><strong>{{ datetime .Date }}</strong>: {{ .HearingType }} ({{ upper .Priority }})<br>{{ .CaseNumber }} {{ .CaseTitle }}<br>{{ .CourtName }}</li>
{{ end }}</ul>`))

// BuildCourtDateReminderEmail creates the daily reminder for one attorney
func BuildCourtDateReminderEmail(attorney models.User, dates []models.UpcomingCourtDate) (*Email, error) {
	data := CourtDateReminderData{AttorneyName: attorney.Name, Dates: dates}

	var text, html bytes.Buffer
	if err := reminderText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render reminder text: %w", err)
	}
	if err := reminderHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render reminder html: %w", err)
	}

	return &Email{
		To:       []string{attorney.Email},
		Subject:  fmt.Sprintf("Court dates in the next 24 hours (%d)", len(dates)),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
