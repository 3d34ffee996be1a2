package jobs

import (
	"fmt"
	"log"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderSchedule runs the reminder job every day at 07:00
const ReminderSchedule = "0 7 * * *"

// ReminderWindow is how far ahead reminders look
const ReminderWindow = 24 * time.Hour

// SendFunc delivers one email
type SendFunc func(email *services.Email) error

// StartScheduler starts the daily court date reminder job. The returned
// cron must be stopped on shutdown.
func StartScheduler(database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	loc := cfg.Location()
	c := cron.New(cron.WithLocation(loc))
	send := func(email *services.Email) error { return services.SendEmail(cfg, email) }

	if _, err := c.AddFunc(ReminderSchedule, func() {
		log.Println("[CRON] Running court date reminders")
		if _, err := SendCourtDateReminders(database, time.Now(), send); err != nil {
			log.Printf("[CRON] Court date reminders failed: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule reminders: %w", err)
	}

	c.Start()
	log.Printf("[CRON] Reminder scheduler started (%s, %s)", ReminderSchedule, loc)
	return c, nil
}

// SendCourtDateReminders emails each assigned attorney the court dates of
// their cases falling in [now, now+ReminderWindow] that were not reminded
// yet. It returns the number of emails sent. Individual send failures are
// logged and skipped.
func SendCourtDateReminders(database *gorm.DB, now time.Time, send SendFunc) (int, error) {
	from := now.UTC()
	to := from.Add(ReminderWindow)

	var dates []models.CourtDate
	if err := database.Where("date >= ? AND date <= ?", from, to).
		Where("reminder_sent_at IS NULL").
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch court dates for reminders: %w", err)
	}
	if len(dates) == 0 {
		log.Println("[JOB] No court dates to remind")
		return 0, nil
	}

	caseIDs := make([]string, 0, len(dates))
	for _, d := range dates {
		caseIDs = append(caseIDs, d.CaseID)
	}
	var cases []models.Case
	if err := database.Where("id IN ?", caseIDs).Find(&cases).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch cases for reminders: %w", err)
	}
	casesByID := make(map[string]models.Case, len(cases))
	attorneyIDs := make([]string, 0, len(cases))
	for _, c := range cases {
		casesByID[c.ID] = c
		attorneyIDs = append(attorneyIDs, c.AssignedAttorney)
	}

	var attorneys []models.User
	if err := database.Where("id IN ?", attorneyIDs).Find(&attorneys).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch attorneys for reminders: %w", err)
	}
	attorneysByID := make(map[string]models.User, len(attorneys))
	for _, a := range attorneys {
		attorneysByID[a.ID] = a
	}

	// Group by attorney, keeping date order
	grouped := make(map[string][]models.UpcomingCourtDate)
	var order []string
	for _, d := range dates {
		c, ok := casesByID[d.CaseID]
		if !ok {
			continue
		}
		if _, ok := attorneysByID[c.AssignedAttorney]; !ok {
			continue
		}
		if _, seen := grouped[c.AssignedAttorney]; !seen {
			order = append(order, c.AssignedAttorney)
		}
		grouped[c.AssignedAttorney] = append(grouped[c.AssignedAttorney], models.UpcomingCourtDate{
			CourtDate:  d,
			CaseTitle:  c.Title,
			CaseNumber: c.CaseNumber,
		})
	}

	sent := 0
	for _, attorneyID := range order {
		attorney := attorneysByID[attorneyID]
		items := grouped[attorneyID]

		email, err := services.BuildCourtDateReminderEmail(attorney, items)
		if err != nil {
			log.Printf("[JOB] Failed to build reminder for %s: %v", attorney.Email, err)
			continue
		}
		if err := send(email); err != nil {
			log.Printf("[JOB] Failed to send reminder to %s: %v", attorney.Email, err)
			continue
		}

		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		sentAt := time.Now().UTC()
		if err := database.Model(&models.CourtDate{}).Where("id IN ?", ids).Update("reminder_sent_at", sentAt).Error; err != nil {
			log.Printf("[JOB] Failed to mark reminders sent for %s: %v", attorney.Email, err)
		}
		sent++
	}

	log.Printf("[JOB] Court date reminders sent: %d", sent)
	return sent, nil
}
