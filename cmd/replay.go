package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/events"
	"github.com/chriserin/ftreport/internal/formatter"
	"github.com/chriserin/ftreport/internal/ui"
	"github.com/spf13/cobra"
)

var (
	replayOutFlag     string
	replayArchiveFlag bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.ndjson>",
	Short: "Build the JSON report of a recorded test run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunReplay(cmd.OutOrStdout(), args[0], replayOutFlag, replayArchiveFlag)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayOutFlag, "out", "", "Write the report to this file instead of stdout")
	replayCmd.Flags().BoolVar(&replayArchiveFlag, "archive", false, "Store the report in the archive")
	rootCmd.AddCommand(replayCmd)
}

func RunReplay(w io.Writer, logPath, outPath string, archive bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	in, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("opening event log: %w", err)
	}
	defer in.Close()

	var opts []formatter.Option
	if cfg.Indent != "" {
		opts = append(opts, formatter.WithIndent("", cfg.Indent))
	}

	var buf bytes.Buffer
	f := formatter.NewJSONFormatter(&buf, opts...)
	if err := events.Replay(in, f, f); err != nil {
		return fmt.Errorf("replaying %s: %w", logPath, err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("replaying %s: event log has no eof event", logPath)
	}

	if outPath == "" {
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	} else {
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		ui.WroteLine(w, logPath, outPath)
	}

	if archive {
		sqlDB, err := openArchive(cfg)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		var name string
		if root := f.Document(); root != nil {
			name = root.GetString("name")
		}
		id, err := db.SaveReport(sqlDB, logPath, name, bytes.TrimSpace(buf.Bytes()))
		if err != nil {
			return err
		}
		logger.Info("archived report", "id", id, "uri", logPath)
		if outPath != "" {
			ui.ArchivedLine(w, id, logPath)
		}
	}
	return nil
}
