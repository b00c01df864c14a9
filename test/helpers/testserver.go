package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agenthub_backend/internal/app"
	"agenthub_backend/internal/config"
)

// TestServer runs the full HTTP stack against a real database. Tests
// that need it are skipped unless DATABASE_URL points at a disposable
// test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to DATABASE_URL, migrates the schema and
// starts the API. Skips the calling test when DATABASE_URL is unset.
func NewTestServer(t *testing.T) *TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	return &TestServer{
		Server: httptest.NewServer(router),
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables truncates all application tables between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec(`TRUNCATE TABLE users, agent_profiles, employer_profiles, jobs, applications, notifications, payment_orders RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the test server and
// returns the response plus its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
