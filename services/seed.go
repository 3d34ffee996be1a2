package services

import (
	"fmt"
	"log"
	"time"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// SeedResult reports how many demo rows were created
type SeedResult struct {
	Users      int
	Clients    int
	Cases      int
	CourtDates int
}

// SeedDemoData fills an empty database with a small office: attorneys and
// staff, clients, cases and court dates around now. It does nothing when
// any case already exists.
func SeedDemoData(db *gorm.DB, now time.Time) (*SeedResult, error) {
	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}
	if count > 0 {
		log.Println("[SEED] Cases already exist, skipping demo data")
		return &SeedResult{}, nil
	}

	result := &SeedResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Name: "John Smith", Email: "john.smith@lawfirm.com", Role: models.RoleAttorney, Phone: models.OptionalString("555-0100")},
			{Name: "Maria Garcia", Email: "maria.garcia@lawfirm.com", Role: models.RoleAttorney},
			{Name: "Robert Chen", Email: "robert.chen@courts.gov", Role: models.RoleJudge},
			{Name: "Linda Park", Email: "linda.park@lawfirm.com", Role: models.RoleClerk},
			{Name: "Jane Doe", Email: "jane.doe@lawfirm.com", Role: models.RoleParalegal},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		result.Users = len(users)

		clients := []models.Client{
			{Name: "Acme Corporation", Email: models.OptionalString("legal@acme.example"), Phone: models.OptionalString("555-0200")},
			{Name: "Thomas Jones", Email: models.OptionalString("tjones@example.com"), Address: models.OptionalString("12 Elm Street")},
			{Name: "Riverside Holdings"},
		}
		if err := tx.Create(&clients).Error; err != nil {
			return fmt.Errorf("failed to seed clients: %w", err)
		}
		result.Clients = len(clients)

		cases := []models.Case{
			{CaseNumber: "2024-CV-001", Title: "Smith v. Jones", CaseType: models.CaseTypeCivil, Status: models.CaseStatusActive,
				ClientID: clients[1].ID, AssignedAttorney: users[0].ID, CourtName: "Superior Court", JudgeName: models.OptionalString(users[2].Name)},
			{CaseNumber: "2024-CR-014", Title: "State v. Riverside Holdings", CaseType: models.CaseTypeCriminal, Status: models.CaseStatusPending,
				ClientID: clients[2].ID, AssignedAttorney: users[1].ID, CourtName: "District Court"},
			{CaseNumber: "2023-CV-087", Title: "Acme Corporation v. Globex", CaseType: models.CaseTypeCivil, Status: models.CaseStatusSettled,
				ClientID: clients[0].ID, AssignedAttorney: users[0].ID, CourtName: "Superior Court",
				Description: models.OptionalString("Contract dispute over supply terms.")},
		}
		if err := tx.Create(&cases).Error; err != nil {
			return fmt.Errorf("failed to seed cases: %w", err)
		}
		result.Cases = len(cases)

		day := 24 * time.Hour
		courtDates := []models.CourtDate{
			{CaseID: cases[0].ID, Date: now.Add(3 * time.Hour).UTC(), CourtName: "Superior Court, Room 4", HearingType: "Motion Hearing", Priority: models.PriorityHigh},
			{CaseID: cases[0].ID, Date: now.Add(14 * day).UTC(), CourtName: "Superior Court, Room 4", HearingType: "Trial", Priority: models.PriorityUrgent},
			{CaseID: cases[1].ID, Date: now.Add(5 * day).UTC(), CourtName: "District Court", HearingType: "Arraignment", Priority: models.PriorityMedium},
			{CaseID: cases[2].ID, Date: now.Add(-20 * day).UTC(), CourtName: "Superior Court", HearingType: "Settlement Conference", Priority: models.PriorityLow,
				Notes: models.OptionalString("Settled before trial.")},
		}
		if err := tx.Create(&courtDates).Error; err != nil {
			return fmt.Errorf("failed to seed court dates: %w", err)
		}
		result.CourtDates = len(courtDates)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SEED] Demo data created: %d users, %d clients, %d cases, %d court dates",
		result.Users, result.Clients, result.Cases, result.CourtDates)
	return result, nil
}
