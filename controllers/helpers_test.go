package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LarzzCode/LarGarage/config"
	"github.com/LarzzCode/LarGarage/controllers"
	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/realtime"
	"github.com/LarzzCode/LarGarage/router"
	"github.com/LarzzCode/LarGarage/utils"
)

const (
	adminEmail    = "admin@largarage.local"
	adminPassword = "admin123"
)

var fixedNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InfoLogger.SetOutput(io.Discard)
	utils.SetJWTSecret("controllers-test")
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	t        *testing.T
	workshop *controllers.Workshop
	router   *gin.Engine
	token    string
}

func testConfig() config.Config {
	return config.Config{
		CORSOrigin:        "*",
		WACountryCode:     "62",
		InvoiceCity:       "Tangerang Selatan",
		LowStockThreshold: 5,
		LogLevel:          "info",
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// newTestApp builds the full router on a fresh database and logs in as admin.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	w := controllers.NewWorkshop(setupTestDB(t), realtime.NewHub(), testConfig())
	w.Now = func() time.Time { return fixedNow }

	_, err := w.Users.EnsureAdmin(context.Background(), "Admin", adminEmail, adminPassword)
	require.NoError(t, err)

	app := &testApp{t: t, workshop: w, router: router.SetupRouter(w)}
	app.token = app.login(adminEmail, adminPassword)
	return app
}

func (a *testApp) login(email, password string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	decodeData(a.t, rec, &data)
	require.NotEmpty(a.t, data.Token)
	return data.Token
}

func (a *testApp) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// api sends an authenticated request as the seeded admin.
func (a *testApp) api(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(method, path, a.token, body)
}

func (a *testApp) createService(body map[string]interface{}) models.Service {
	a.t.Helper()
	rec := a.api(http.MethodPost, "/api/services", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var s models.Service
	decodeData(a.t, rec, &s)
	return s
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
}

func pathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
