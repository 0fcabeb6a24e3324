package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"stormlightlabs.org/matchday/internal/db"
	"stormlightlabs.org/matchday/internal/echo"
	"stormlightlabs.org/matchday/internal/repository"
	"stormlightlabs.org/matchday/internal/seed"
)

// SeedCmd creates the seed command group
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo roster data",
		Long:  "Load a roster CSV file into Postgres before balancing it.",
	}
	cmd.AddCommand(SeedRosterCmd())
	return cmd
}

// SeedRosterCmd creates the "seed roster" command
func SeedRosterCmd() *cobra.Command {
	var rosterID, name string
	cmd := &cobra.Command{
		Use:   "roster <csv-path>",
		Short: "Load a roster CSV into Postgres",
		Long:  "Parse a roster CSV file (see internal/testutils/testdata/roster_players.csv for the expected columns) and upsert it as a named roster.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return loadRosterCSV(cmd, args[0], rosterID, name)
		},
	}
	cmd.Flags().StringVar(&rosterID, "id", "", "Roster ID to store the players under (required)")
	cmd.Flags().StringVar(&name, "name", "", "Human-readable roster name")
	return cmd
}

func loadRosterCSV(cmd *cobra.Command, csvPath, rosterID, name string) error {
	if rosterID == "" {
		return fmt.Errorf("error: --id is required")
	}

	echo.Header("Seeding Roster")
	echo.Info("Connecting to database...")

	database, err := db.Connect("")
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}
	defer database.Close()

	echo.Success("✓ Connected to database")

	repo := repository.NewRosterRepository(database.DB)

	ctx := cmd.Context()
	count, err := seed.LoadRosterCSV(ctx, repo, seed.RosterCSVOptions{
		RosterID: rosterID,
		Name:     name,
		CSVPath:  csvPath,
	})
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	echo.Successf("✓ Loaded roster %s (%s players)", rosterID, formatLargeNumber(int64(count)))
	return nil
}
