package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	guildID string
	dryRun  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&guildID, "guild", "", "Guild ID to scope the request to")

	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the processor without writing or notifying")
	dashboardsCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render dashboards without editing Discord messages")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(ticketsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(dashboardsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the game processing pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/process")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List upcoming games",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/games")
	},
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List open tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tickets")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Get the player leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Get the persisted usage counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/counters")
	},
}

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Refresh the pinned guild dashboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/dashboards/refresh")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	params := url.Values{}
	if guildID != "" {
		params.Set("guild_id", guildID)
	}
	if dryRun {
		params.Set("dry_run", "true")
	}
	requestURL := host + endpoint
	if encoded := params.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}
	fmt.Printf("Making request to %s\n", requestURL)

	resp, err := http.Get(requestURL)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
