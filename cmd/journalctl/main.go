// Command journalctl manages a verse journal database from the terminal:
// schema migrations, one-off grading and a recitation quiz.
package main

import (
	"fmt"
	"os"

	"verse-journal/internal/config"
	"verse-journal/internal/database"
	"verse-journal/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "journalctl",
	Short:         "Verse journal maintenance and practice tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		return logger.Initialize(config.LoggerConfig{Level: level, Env: "development"})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(newMigrateCmd(), newGradeCmd(), newQuizCmd())
}

// openDB connects using config.yaml and environment overrides.
func openDB() (*sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.NewDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DB.Driver, err)
	}
	return db, nil
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
