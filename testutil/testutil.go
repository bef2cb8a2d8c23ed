// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema. Each
// test gets its own file under t.TempDir, closed automatically at cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "voting_test.db")
	conn, err := db.Open(db.SQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupSeededDB is SetupTestDB plus the standard voter roll and candidate list.
func SetupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupTestDB(t)
	if _, err := db.Seed(context.Background(), conn); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  "file:voting_test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		StaticDir:    "public",
		IPHashSalt:   "test-ip-salt",
		LogLevel:     "info",
	}
}

// CreateTestVoter inserts a voter and returns its internal id
func CreateTestVoter(t *testing.T, conn *sql.DB, idNumber, fullName, county string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (id_number, full_name, county)
		VALUES ($1, $2, $3)
		RETURNING id
	`, idNumber, fullName, county).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return id
}

// CreateTestCandidate inserts a candidate with zero votes and returns its id.
// An empty county creates a nationwide candidate.
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, category, county string) int64 {
	t.Helper()

	var countyArg *string
	if county != "" {
		countyArg = &county
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO candidates (name, category, county, votes)
		VALUES ($1, $2, $3, 0)
		RETURNING id
	`, name, category, countyArg).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// VoterIDByIDNumber looks up the internal id of a seeded voter
func VoterIDByIDNumber(t *testing.T, conn *sql.DB, idNumber string) int64 {
	t.Helper()

	var id int64
	if err := conn.QueryRow(`SELECT id FROM users WHERE id_number = $1`, idNumber).Scan(&id); err != nil {
		t.Fatalf("Failed to find voter %s: %v", idNumber, err)
	}
	return id
}

// CandidateIDByName looks up the id of a seeded candidate within a category
func CandidateIDByName(t *testing.T, conn *sql.DB, name, category string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		SELECT id FROM candidates WHERE name = $1 AND category = $2
	`, name, category).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to find candidate %s: %v", name, err)
	}
	return id
}

// CandidateVotes returns the stored vote count for a candidate
func CandidateVotes(t *testing.T, conn *sql.DB, candidateID int64) int64 {
	t.Helper()

	var votes int64
	if err := conn.QueryRow(`SELECT votes FROM candidates WHERE id = $1`, candidateID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	return votes
}

// CountBallots counts ballots for a voter in a category
func CountBallots(t *testing.T, conn *sql.DB, voterID int64, category string) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE voter_id = $1 AND category = $2
	`, voterID, category).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count ballots: %v", err)
	}
	return count
}

// AssertTalliesConsistent fails the test if any candidate's stored vote count
// differs from the number of ballots that reference it.
func AssertTalliesConsistent(t *testing.T, conn *sql.DB) {
	t.Helper()

	rows, err := conn.Query(`
		SELECT c.id, c.votes, COUNT(v.id)
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		GROUP BY c.id, c.votes
		HAVING c.votes <> COUNT(v.id)
	`)
	if err != nil {
		t.Fatalf("Failed to compare tallies: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, votes, ballots int64
		if err := rows.Scan(&id, &votes, &ballots); err != nil {
			t.Fatalf("Failed to scan tally row: %v", err)
		}
		t.Errorf("candidate %d has votes=%d but %d ballots", id, votes, ballots)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to iterate tallies: %v", err)
	}
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
