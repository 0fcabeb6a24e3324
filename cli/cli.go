// TODO: refactor [RootCmd] to be a func
package main

import (
	"github.com/spf13/cobra"
	"stormlightlabs.org/matchday/cmd"
	"stormlightlabs.org/matchday/internal/echo"
)

// RootCmd is the root command for the matchday CLI
var RootCmd = &cobra.Command{
	Use:   "matchday",
	Short: "Team-balancing engine and API toolkit",
	Long: echo.HeaderStyle().Render("Matchday") + "\n\n" +
		"Rates a roster, tiers it, runs a snake draft, and local-search\n" +
		"optimizes the result into two balanced teams.",
}

func init() {
	RootCmd.AddCommand(cmd.ServerCmd())
	RootCmd.AddCommand(cmd.DbCmd())
	RootCmd.AddCommand(cmd.CacheCmd())
	RootCmd.AddCommand(cmd.SeedCmd())
	RootCmd.AddCommand(cmd.BalanceCmd())
	RootCmd.PersistentFlags().String("config", "", "Path to config file (default: conf.toml)")
}
