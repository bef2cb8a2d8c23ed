// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command tally prints the current results from the configured store as
// Markdown tables. It reads the same flags and environment as the server.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/db"
	"github.com/preciouskorir/voting-system/report"
	"github.com/preciouskorir/voting-system/voting"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("tally failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliparse.Config, w io.Writer) error {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return err
	}

	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	tallies, err := voting.NewService(conn).Tally(ctx)
	if err != nil {
		return err
	}

	report.WriteTally(w, voting.GroupByCategory(tallies))
	return nil
}
