// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(SQLite, "file:"+filepath.Join(t.TempDir(), "db_test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(context.Background(), conn, SQLite); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	return conn
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{"postgres", Postgres, false},
		{"sqlite", SQLite, false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDialect(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(context.Background(), conn, SQLite); err != nil {
		t.Errorf("second CreateSchema() error = %v", err)
	}
}

func TestCreateSchemaUnknownDialect(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(context.Background(), conn, Dialect("oracle")); err == nil {
		t.Error("expected an error for an unknown dialect")
	}
}

func TestSeedOnlyFillsEmptyTables(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	res, err := Seed(ctx, conn)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if res.Voters != len(seedVoters) || res.Candidates != len(seedCandidates) {
		t.Errorf("Seed() = %+v, want %d voters and %d candidates", res, len(seedVoters), len(seedCandidates))
	}

	res, err = Seed(ctx, conn)
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if res.Voters != 0 || res.Candidates != 0 {
		t.Errorf("second Seed() inserted rows: %+v", res)
	}

	var voters, candidates int
	conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&voters)
	conn.QueryRow(`SELECT COUNT(*) FROM candidates`).Scan(&candidates)
	if voters != len(seedVoters) {
		t.Errorf("expected %d voters, got %d", len(seedVoters), voters)
	}
	if candidates != len(seedCandidates) {
		t.Errorf("expected %d candidates, got %d", len(seedCandidates), candidates)
	}
}

func TestSchemaConstraints(t *testing.T) {
	conn := openTestDB(t)

	tests := []struct {
		name     string
		category string
		county   *string
	}{
		{"unknown category", "Chiefs", nil},
		{"nationwide with county", "President", strPtr("Baringo")},
		{"scoped without county", "Governors", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(`
				INSERT INTO candidates (name, category, county) VALUES ('X', $1, $2)
			`, tt.category, tt.county)
			if err == nil {
				t.Error("expected CHECK constraint to reject the row")
			}
		})
	}

	t.Run("ballot for unknown voter", func(t *testing.T) {
		_, err := conn.Exec(`
			INSERT INTO votes (voter_id, candidate_id, category, cast_at) VALUES (999, 999, 'President', $1)
		`, time.Now())
		if err == nil {
			t.Error("expected foreign keys to be enforced")
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	conn := openTestDB(t)

	insert := `INSERT INTO users (id_number, full_name, county) VALUES ('41581309', 'Precious Korir', 'Baringo')`
	if _, err := conn.Exec(insert); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	_, err := conn.Exec(insert)
	if err == nil {
		t.Fatal("expected duplicate id_number to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}

	if IsUniqueViolation(errors.New("some other failure")) {
		t.Error("IsUniqueViolation should ignore unrelated errors")
	}
	if IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation(nil) should be false")
	}
}

func TestBallotUniquePerVoterAndCategory(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	if _, err := Seed(ctx, conn); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	var voterID, candidateID int64
	conn.QueryRow(`SELECT id FROM users WHERE id_number = '41581309'`).Scan(&voterID)
	conn.QueryRow(`SELECT id FROM candidates WHERE category = 'President' ORDER BY id LIMIT 1`).Scan(&candidateID)

	insert := `INSERT INTO votes (voter_id, candidate_id, category, cast_at) VALUES ($1, $2, 'President', $3)`
	if _, err := conn.Exec(insert, voterID, candidateID, time.Now()); err != nil {
		t.Fatalf("first ballot failed: %v", err)
	}
	_, err := conn.Exec(insert, voterID, candidateID, time.Now())
	if !IsUniqueViolation(err) {
		t.Errorf("second ballot: expected unique violation, got %v", err)
	}
}

func TestWithSQLitePragmas(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"file:x.db", "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:x.db?mode=memory", "file:x.db?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
	}

	for _, tt := range tests {
		if got := withSQLitePragmas(tt.input); got != tt.want {
			t.Errorf("withSQLitePragmas(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }
