package testutils

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFixtures loads the standard roster/balance_runs CSV fixtures into the
// test database. It uses per-row INSERT statements rather than COPY so empty
// fields cleanly become SQL NULL (CSV COPY needs a matching NULL sentinel).
func (c *PostgresContainer) LoadFixtures(ctx context.Context) error {
	fixtures := map[string]string{
		"rosters":        "rosters.csv",
		"roster_players": "roster_players.csv",
		"balance_runs":   "balance_runs.csv",
	}

	projectRoot, err := GetProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to get project root: %w", err)
	}

	fixturesDir := filepath.Join(projectRoot, "internal", "testutils", "testdata")

	for table, csvFile := range fixtures {
		csvPath := filepath.Join(fixturesDir, csvFile)
		if !fileExists(csvPath) {
			continue
		}
		if err := c.LoadCSV(ctx, table, csvPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", csvFile, err)
		}
	}

	return nil
}

// LoadCSV loads a CSV file into a database table using INSERT statements.
// This is simpler than COPY FROM STDIN for small test datasets.
func (c *PostgresContainer) LoadCSV(ctx context.Context, table, csvPath string) error {
	if !fileExists(csvPath) {
		return fmt.Errorf("CSV file not found: %s", csvPath)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV headers: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read CSV records: %w", err)
	}

	if len(records) == 0 {
		return nil
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(headers))
	quotedHeaders := make([]string, len(headers))
	for i := range headers {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		quotedHeaders[i] = fmt.Sprintf(`"%s"`, headers[i])
	}

	columnList := strings.Join(quotedHeaders, ", ")
	placeholderList := strings.Join(placeholders, ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, columnList, placeholderList)

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare INSERT statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		values := make([]any, len(record))
		for i, v := range record {
			if v == "" {
				values[i] = nil
			} else {
				values[i] = v
			}
		}

		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SeedFromSQL loads fixture data from SQL files instead of CSV.
func (c *PostgresContainer) SeedFromSQL(ctx context.Context, sqlFiles ...string) error {
	projectRoot, err := GetProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to get project root: %w", err)
	}

	fixturesDir := filepath.Join(projectRoot, "internal", "testutils", "testdata")

	for _, sqlFile := range sqlFiles {
		sqlPath := filepath.Join(fixturesDir, sqlFile)
		if err := c.Seed(ctx, sqlPath); err != nil {
			return fmt.Errorf("failed to seed from %s: %w", sqlFile, err)
		}
	}

	return nil
}
