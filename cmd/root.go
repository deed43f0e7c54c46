package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
	"github.com/vendysmarket/PUMiNewApp/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pumi",
	Short: "AI-backed daily learning plans",
	Long:  "PUMi — generates focused daily learning plans and their items (lessons, quizzes, practice) with an LLM, validated and persisted locally.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PUMI_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PUMI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newProvider builds the LLM provider chain from environment config,
// recording request events in the store.
func newProvider(ctx context.Context, s *store.Store, log *slog.Logger) (llm.Provider, error) {
	cfg := llm.DiscoverConfig()
	return llm.NewProvider(ctx, cfg, s.Events(), log)
}
