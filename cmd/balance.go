package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stormlightlabs.org/matchday/internal/core"
	"stormlightlabs.org/matchday/internal/db"
	"stormlightlabs.org/matchday/internal/echo"
	"stormlightlabs.org/matchday/internal/repository"
)

// BalanceCmd creates the balance command.
func BalanceCmd() *cobra.Command {
	var (
		rosterFile  string
		rosterID    string
		showAudit   bool
		firstPicker string
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Rate, tier, draft, and optimize a roster into two balanced teams",
		Long: "Run the full balance pipeline over a roster loaded from a JSON file or, with --roster-id,\n" +
			"a roster stored in Postgres, and print the resulting teams.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalanceCmd(cmd, rosterFile, rosterID, showAudit, firstPicker)
		},
	}

	cmd.Flags().StringVar(&rosterFile, "roster-file", "", "Path to a JSON file containing a roster (array of players)")
	cmd.Flags().StringVar(&rosterID, "roster-id", "", "ID of a roster stored in Postgres (mutually exclusive with --roster-file)")
	cmd.Flags().BoolVar(&showAudit, "audit", false, "Print the full audit trail after the team summary")
	cmd.Flags().StringVar(&firstPicker, "first-picker", "", "Pin the draft's first-picking side to \"blue\" or \"orange\" instead of a random pick")
	return cmd
}

func runBalanceCmd(cmd *cobra.Command, rosterFile, rosterID string, showAudit bool, firstPicker string) error {
	if (rosterFile == "") == (rosterID == "") {
		return fmt.Errorf("error: exactly one of --roster-file or --roster-id is required")
	}

	if firstPicker == "" {
		if cfg, err := loadConfigForCmd(cmd); err == nil {
			firstPicker = cfg.Draft.FixedFirstPicker
		}
	}

	var rnd core.RandomSource = core.CryptoRandomSource{}
	switch firstPicker {
	case "":
	case "blue":
		rnd = core.FixedRandomSource(false)
	case "orange":
		rnd = core.FixedRandomSource(true)
	default:
		return fmt.Errorf("error: --first-picker must be \"blue\" or \"orange\", got %q", firstPicker)
	}

	var players []core.Player
	var database *db.DB
	if rosterFile != "" {
		data, err := os.ReadFile(rosterFile)
		if err != nil {
			return fmt.Errorf("error: failed to read roster file %s: %w", rosterFile, err)
		}
		if err := json.Unmarshal(data, &players); err != nil {
			return fmt.Errorf("error: failed to parse roster file %s: %w", rosterFile, err)
		}
	} else {
		echo.Info("Connecting to database...")
		var err error
		database, err = db.Connect("")
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
		defer database.Close()

		repo := repository.NewRosterRepository(database.DB)
		players, err = repo.GetRoster(cmd.Context(), rosterID)
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}

	echo.Header("Balancing Roster")
	echo.Infof("Players: %d", len(players))
	echo.Info("")

	result, err := core.BalanceRoster(cmd.Context(), players, rnd)
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	printTeam(echo.SuccessStyle().Render("Blue"), result.BlueTeam)
	echo.Info("")
	printTeam(echo.InfoStyle().Render("Orange"), result.OrangeTeam)
	echo.Info("")

	echo.Infof("Initial score:   %.3f", result.InitialScore)
	echo.Infof("Optimized score: %.3f (optimized: %v)", result.OptimizedScore, result.WasOptimized)
	echo.Infof("Confidence: %s — %s", result.ConfidenceLevel, result.ConfidenceMessage)

	if showAudit && result.Audit != nil {
		echo.Info("")
		echo.Header("Audit Trail")
		echo.Info(result.Audit.String())
	}

	if database != nil && result.Audit != nil {
		summary := result.Audit.Summary
		if err := database.RecordBalanceRun(cmd.Context(), rosterID, summary.FinalScore, summary.QualityBand, summary.AdvantageTag, summary.SwapCount, result.Audit.String()); err != nil {
			echo.Errorf("⚠ failed to record balance run: %v", err)
		}
	}

	return nil
}

func printTeam(label string, team []core.RatedPlayer) {
	echo.Infof("%s (%d players):", label, len(team))
	for _, p := range team {
		echo.Infof("  [tier %d] %-20s composite=%.2f momentum=%s", p.Tier, p.DisplayName, p.CompositeRating, p.MomentumCategory)
	}
}
