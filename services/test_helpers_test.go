package services

import (
	"context"
	"io"
	"testing"

	"case_desk_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	dsn := "file:mem_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Case{},
		&models.CourtDate{},
		&models.Document{},
	))
	return db
}

// MockStorageProvider is a mock implementation of StorageProvider
type MockStorageProvider struct {
	mock.Mock
}

func (m *MockStorageProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockStorageProvider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorageProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorageProvider) Name() string { return "mock" }

type fixture struct {
	attorney models.User
	client   models.Client
	caseRec  models.Case
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		attorney: models.User{Name: "John Smith", Email: "john@firm.test", Role: models.RoleAttorney},
		client:   models.Client{Name: "Thomas Jones"},
	}
	require.NoError(t, db.Create(&f.attorney).Error)
	require.NoError(t, db.Create(&f.client).Error)
	f.caseRec = models.Case{
		CaseNumber:       "2024-CV-001",
		Title:            "Smith v. Jones",
		CaseType:         models.CaseTypeCivil,
		ClientID:         f.client.ID,
		AssignedAttorney: f.attorney.ID,
		CourtName:        "Superior Court",
	}
	require.NoError(t, db.Create(&f.caseRec).Error)
	return f
}

func stringPtr(s string) *string {
	return &s
}
