// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/db"
	"github.com/preciouskorir/voting-system/models"
	"github.com/preciouskorir/voting-system/testutil"
	"github.com/preciouskorir/voting-system/voting"
)

// seededStore provisions a SQLite file with the seed data and one ballot,
// then closes it so run opens the file the way the command would.
func seededStore(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "votes.db")

	conn, err := db.Open(db.SQLite, path)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.CreateSchema(ctx, conn, db.SQLite))
	_, err = db.Seed(ctx, conn)
	require.NoError(t, err)

	voterID := testutil.VoterIDByIDNumber(t, conn, "41581309")
	candidateID := testutil.CandidateIDByName(t, conn, "Paul Kipchumba", models.CategoryPresident)
	_, err = voting.NewService(conn).CastVote(ctx, voterID, candidateID)
	require.NoError(t, err)

	return path
}

func TestRunWritesTally(t *testing.T) {
	path := seededStore(t)

	var out bytes.Buffer
	err := run(context.Background(), cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: path}, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "## President (nationwide, 1 votes)")
	assert.Contains(t, report, "Paul Kipchumba")
	assert.Contains(t, report, "Amina Wanjiku")
	assert.Contains(t, report, "100.0%")
}

func TestRunRejectsUnknownDatabaseType(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), cliparse.Config{DatabaseType: "mysql", DatabaseURL: "ignored"}, &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunFailsWithoutSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	var out bytes.Buffer
	err := run(context.Background(), cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: path}, &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
}
