package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/middleware"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Case{},
		&models.CourtDate{},
		&models.Document{},
	)
	require.NoError(t, err)

	// Set global DB and a throwaway storage
	db.DB = testDB
	services.Storage = services.NewLocalStorage(t.TempDir())

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		ReminderTZ:  "UTC",
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set(middleware.ContextKeyConfig, testConfig())

	return e, c, rec
}

// jsonBody encodes v as a request body
func jsonBody(t *testing.T, v interface{}) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(data))
}

func jsonReader(s string) io.Reader {
	return strings.NewReader(s)
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func assertDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	assert.Equal(t, status, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, detail, body["detail"])
}

type fixture struct {
	attorney models.User
	client   models.Client
	caseRec  models.Case
}

// seedFixture stores an attorney, a client and case 2024-CV-001
func seedFixture(t *testing.T, database *gorm.DB) fixture {
	f := fixture{
		attorney: models.User{Name: "John Smith", Email: "john.smith@lawfirm.com", Role: models.RoleAttorney},
		client:   models.Client{Name: "Alice Smith", Email: stringToPtr("alice@example.com")},
	}
	require.NoError(t, database.Create(&f.attorney).Error)
	require.NoError(t, database.Create(&f.client).Error)

	f.caseRec = models.Case{
		CaseNumber:       "2024-CV-001",
		Title:            "Smith v. Jones",
		CaseType:         models.CaseTypeCivil,
		Status:           models.CaseStatusActive,
		ClientID:         f.client.ID,
		AssignedAttorney: f.attorney.ID,
		CourtName:        "Superior Court",
	}
	require.NoError(t, database.Create(&f.caseRec).Error)
	return f
}

func addCourtDate(t *testing.T, database *gorm.DB, caseID string, date time.Time) models.CourtDate {
	d := models.CourtDate{
		CaseID:      caseID,
		Date:        date.UTC(),
		CourtName:   "Superior Court",
		HearingType: "Motion Hearing",
		Priority:    models.PriorityHigh,
	}
	require.NoError(t, database.Create(&d).Error)
	return d
}

func stringToPtr(s string) *string {
	return &s
}
