package commands

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vector/engine"
	"github.com/viant/sqlite-vector/internal/config"
)

var (
	cfgFile  string
	dsnFlag  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "vecsql",
	Short: "Vector type tools for SQLite",
	Long: `vecsql parses, validates and compares vector literals and runs SQL
against a SQLite database with the vector functions registered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := cfg.Logging.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		engine.SetLogger(logger)
		globalConfig = cfg
		return nil
	},
}

var globalConfig *config.Config

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database DSN (overrides database.dsn)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides logging.level)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(typmodCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(storeCmd)
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}
	if dsnFlag != "" {
		cfg.Database.DSN = dsnFlag
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openDB opens the configured database with the vector functions registered.
func openDB() (*sql.DB, error) {
	db, err := engine.Open(globalConfig.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", globalConfig.Database.DSN, err)
	}
	if n := globalConfig.Database.MaxOpenConns; n > 0 {
		db.SetMaxOpenConns(n)
	}
	return db, nil
}
