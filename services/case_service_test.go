package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"case_desk_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCase(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)

	validInput := func() models.CaseInput {
		return models.CaseInput{
			CaseNumber:       "2024-CR-002",
			Title:            "State v. Doe",
			CaseType:         models.CaseTypeCriminal,
			ClientID:         f.client.ID,
			AssignedAttorney: f.attorney.ID,
			CourtName:        "District Court",
		}
	}

	t.Run("Defaults status to active", func(t *testing.T) {
		c, err := CreateCase(db, validInput())
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, models.CaseStatusActive, c.Status)
		assert.Nil(t, c.JudgeName)
	})

	t.Run("Sanitizes description", func(t *testing.T) {
		input := validInput()
		input.Description = "<script>alert(1)</script>Breach of contract"
		c, err := CreateCase(db, input)
		require.NoError(t, err)
		require.NotNil(t, c.Description)
		assert.Equal(t, "Breach of contract", *c.Description)
	})

	t.Run("Keeps plain text verbatim", func(t *testing.T) {
		const description = `Smith & Jones: O'Brien's "motion" to compel, damages < $5k`
		input := validInput()
		input.Description = description
		c, err := CreateCase(db, input)
		require.NoError(t, err)
		require.NotNil(t, c.Description)
		assert.Equal(t, description, *c.Description)

		// Resubmitting the stored text unchanged must not alter it
		for i := 0; i < 2; i++ {
			c, err = UpdateCase(db, c.ID, models.CaseUpdate{Description: c.Description})
			require.NoError(t, err)
		}
		stored, err := GetCase(db, c.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.Description)
		assert.Equal(t, description, *stored.Description)
	})

	t.Run("Unknown client", func(t *testing.T) {
		input := validInput()
		input.ClientID = "missing"
		_, err := CreateCase(db, input)
		assert.True(t, errors.Is(err, ErrClientNotFound))
	})

	t.Run("Unknown attorney", func(t *testing.T) {
		input := validInput()
		input.AssignedAttorney = "missing"
		_, err := CreateCase(db, input)
		assert.True(t, errors.Is(err, ErrAttorneyNotFound))
	})

	t.Run("Missing title", func(t *testing.T) {
		input := validInput()
		input.Title = "  "
		_, err := CreateCase(db, input)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "title", vErr.Field)
	})

	t.Run("Invalid type", func(t *testing.T) {
		input := validInput()
		input.CaseType = "family"
		_, err := CreateCase(db, input)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "case_type", vErr.Field)
	})
}

func TestListCases_NewestFirst(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)

	older := f.caseRec
	newer := models.Case{
		CaseNumber: "2024-CV-009", Title: "Newer", CaseType: models.CaseTypeCivil,
		ClientID: f.client.ID, AssignedAttorney: f.attorney.ID, CourtName: "Court",
		CreatedAt: older.CreatedAt.Add(time.Minute),
	}
	require.NoError(t, db.Create(&newer).Error)

	cases, err := ListCases(db)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, newer.ID, cases[0].ID)
	assert.Equal(t, older.ID, cases[1].ID)
}

func TestUpdateCase(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)

	t.Run("Applies only editable fields", func(t *testing.T) {
		updated, err := UpdateCase(db, f.caseRec.ID, models.CaseUpdate{
			Title:     stringPtr("Smith v. Jones (Appeal)"),
			Status:    stringPtr(models.CaseStatusClosed),
			JudgeName: stringPtr("Robert Chen"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Smith v. Jones (Appeal)", updated.Title)
		assert.Equal(t, models.CaseStatusClosed, updated.Status)
		assert.Equal(t, "2024-CV-001", updated.CaseNumber)
		require.NotNil(t, updated.JudgeName)
		assert.Equal(t, "Robert Chen", *updated.JudgeName)
	})

	t.Run("Empty values are ignored", func(t *testing.T) {
		updated, err := UpdateCase(db, f.caseRec.ID, models.CaseUpdate{Title: stringPtr(""), CourtName: stringPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "Smith v. Jones (Appeal)", updated.Title)
		assert.Equal(t, "Superior Court", updated.CourtName)
	})

	t.Run("Invalid status", func(t *testing.T) {
		_, err := UpdateCase(db, f.caseRec.ID, models.CaseUpdate{Status: stringPtr("archived")})
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("Unknown attorney", func(t *testing.T) {
		_, err := UpdateCase(db, f.caseRec.ID, models.CaseUpdate{AssignedAttorney: stringPtr("missing")})
		assert.True(t, errors.Is(err, ErrAttorneyNotFound))
	})

	t.Run("Missing case", func(t *testing.T) {
		_, err := UpdateCase(db, "missing", models.CaseUpdate{Title: stringPtr("x")})
		assert.True(t, errors.Is(err, ErrCaseNotFound))
	})
}

func TestDeleteCase_Cascades(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.CourtDate{CaseID: f.caseRec.ID, Date: time.Now(), CourtName: "Room 1", HearingType: "Trial"}).Error)
	require.NoError(t, db.Create(&models.CourtDate{CaseID: f.caseRec.ID, Date: time.Now(), CourtName: "Room 2", HearingType: "Motion"}).Error)
	doc := models.Document{CaseID: f.caseRec.ID, Filename: "brief.pdf", Category: models.DocumentCategoryPleading,
		FileType: "application/pdf", UploadedBy: f.attorney.ID, FileSize: 3, StorageKey: "cases/x/brief.pdf"}
	require.NoError(t, db.Create(&doc).Error)

	storage := new(MockStorageProvider)
	storage.On("Delete", mock.Anything, "cases/x/brief.pdf").Return(nil)

	require.NoError(t, DeleteCase(ctx, db, storage, f.caseRec.ID))

	var count int64
	db.Model(&models.Case{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.CourtDate{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.Document{}).Count(&count)
	assert.Equal(t, int64(0), count)
	storage.AssertExpectations(t)

	err := DeleteCase(ctx, db, storage, f.caseRec.ID)
	assert.True(t, errors.Is(err, ErrCaseNotFound))
}

func TestDeleteCase_StorageFailureDoesNotFail(t *testing.T) {
	db := setupServiceTestDB(t)
	f := seedFixture(t, db)

	doc := models.Document{CaseID: f.caseRec.ID, Filename: "a.txt", Category: models.DocumentCategoryOther,
		FileType: "text/plain", UploadedBy: "u", FileSize: 1, StorageKey: "cases/y/a.txt"}
	require.NoError(t, db.Create(&doc).Error)

	storage := new(MockStorageProvider)
	storage.On("Delete", mock.Anything, "cases/y/a.txt").Return(errors.New("bucket unavailable"))

	assert.NoError(t, DeleteCase(context.Background(), db, storage, f.caseRec.ID))
	storage.AssertExpectations(t)
}
