package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/ui"
	"github.com/spf13/cobra"
)

var showRawFlag bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an archived report by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0], showRawFlag)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRawFlag, "raw", false, "Print the stored document only, as stored")
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string, raw bool) error {
	id, err := parseReportID(rawID)
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	sqlDB, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	r, err := db.GetReport(sqlDB, id)
	if err != nil {
		return err
	}

	if raw {
		fmt.Fprintln(w, r.Document)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(r.Document), "", "  "); err != nil {
		return fmt.Errorf("report %d holds invalid JSON: %w", id, err)
	}

	ui.ShowHeader(w, r.ID, r.URI, r.FeatureName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, pretty.String())
	return nil
}
