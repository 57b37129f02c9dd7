// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/arifmahmud/live-tally/cliparse"
	"github.com/arifmahmud/live-tally/db"
	"github.com/arifmahmud/live-tally/models"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir with
// the full schema. A single connection serializes concurrent access, so
// racing submissions resolve on the unique constraint rather than on
// SQLITE_BUSY.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "tally.db")
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               5000,
		DatabaseURL:        "file:test.db",
		DatabaseType:       "sqlite",
		CORSOrigin:         "http://localhost:5173",
		IdentitySalt:       "test-identity-salt",
		Deadline:           time.Now().Add(24 * time.Hour),
		SimulationInterval: 5 * time.Second,
	}
}

// SeedVote inserts a vote record directly and returns its ID.
func SeedVote(t *testing.T, conn *sql.DB, identity string, candidate models.CandidateID) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, identity, candidate_id, candidate_name, party, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, identity, candidate, candidate.Name(), candidate.Party(), time.Now())
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
	return id
}

// SeedReferendumVote inserts a referendum record directly and returns its ID.
func SeedReferendumVote(t *testing.T, conn *sql.DB, identity string, choice models.Choice) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO referendum_vote (id, identity, choice, cast_at)
		VALUES ($1, $2, $3, $4)
	`, id, identity, choice, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed referendum vote: %v", err)
	}
	return id
}

// SeedVoter inserts an identity record directly.
func SeedVoter(t *testing.T, conn *sql.DB, identity string, hasVoted, hasVotedReferendum bool) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO voter (identity, has_voted, has_voted_referendum)
		VALUES ($1, $2, $3)
	`, identity, hasVoted, hasVotedReferendum)
	if err != nil {
		t.Fatalf("Failed to seed voter: %v", err)
	}
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
