package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chriserin/ftreport/internal/config"
	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ftreport",
	Short:        "ftreport — JSON reports for Gherkin test runs",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.Path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(os.Stderr, cfg.LogLevel), nil
}

func openArchive(cfg *config.Config) (*sql.DB, error) {
	if _, err := os.Stat(config.Dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("run `ftreport init` first")
	}
	sqlDB, err := db.Open(cfg.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	return sqlDB, nil
}

// parseReportID accepts "12" or "#12".
func parseReportID(raw string) (int64, error) {
	raw = strings.TrimPrefix(raw, "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid report ID: %s", raw)
	}
	return id, nil
}
