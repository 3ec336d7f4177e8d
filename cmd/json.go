package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/formatter"
	"github.com/chriserin/ftreport/internal/parser"
	"github.com/chriserin/ftreport/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outDirFlag  string
	archiveFlag bool
)

var jsonCmd = &cobra.Command{
	Use:   "json [files...]",
	Short: "Write the JSON report of each feature file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunJSON(cmd.OutOrStdout(), args, outDirFlag, archiveFlag)
	},
}

func init() {
	jsonCmd.Flags().StringVar(&outDirFlag, "out", "", "Write <name>.json files to this directory instead of stdout")
	jsonCmd.Flags().BoolVar(&archiveFlag, "archive", false, "Store each report in the archive")
	rootCmd.AddCommand(jsonCmd)
}

// RunJSON parses each feature file and writes its JSON document to w, one
// per line, or to outDir when set. Files that fail are reported and skipped.
func RunJSON(w io.Writer, paths []string, outDir string, archive bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths, err = filepath.Glob(cfg.FeaturesGlob)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", cfg.FeaturesGlob, err)
		}
		sort.Strings(paths)
	}

	var save func(uri, name string, doc []byte) error
	if archive {
		sqlDB, err := openArchive(cfg)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		save = func(uri, name string, doc []byte) error {
			id, err := db.SaveReport(sqlDB, uri, name, doc)
			if err != nil {
				return err
			}
			logger.Info("archived report", "id", id, "uri", uri)
			if outDir != "" {
				ui.ArchivedLine(w, id, uri)
			}
			return nil
		}
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", outDir, err)
		}
	}

	var opts []formatter.Option
	if cfg.Indent != "" {
		opts = append(opts, formatter.WithIndent("", cfg.Indent))
	}

	count, failed := 0, 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc, parseErrors := parser.Parse(path, content)
		var buf bytes.Buffer
		if err := parser.Emit(doc, parseErrors, path, formatter.NewJSONFormatter(&buf, opts...)); err != nil {
			logger.Warn("skipping feature", "uri", path, "err", err)
			ui.FailLine(w, path, err)
			failed++
			continue
		}
		logger.Debug("formatted feature", "uri", path, "elements", len(doc.Elements))

		if outDir == "" {
			buf.WriteByte('\n')
			if _, err := w.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("writing report for %s: %w", path, err)
			}
		} else {
			dest := filepath.Join(outDir, reportFileName(path))
			if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			ui.WroteLine(w, path, dest)
		}

		if save != nil {
			if err := save(path, doc.Feature.Name, buf.Bytes()); err != nil {
				return err
			}
		}
		count++
	}

	if outDir != "" {
		ui.SummaryLine(w, count)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d feature files could not be reported", failed, len(paths))
	}
	return nil
}

// reportFileName maps features/login.feature to login.json.
func reportFileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
