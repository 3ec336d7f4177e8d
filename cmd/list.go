package cmd

import (
	"fmt"
	"io"

	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/ui"
	"github.com/spf13/cobra"
)

var uriFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), uriFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&uriFlag, "uri", "", "Only list reports of this feature file")
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, uri string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	sqlDB, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reports, err := db.ListReports(sqlDB, uri)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(w, "no archived reports")
		return nil
	}

	// Compute column widths
	idWidth, uriWidth, nameWidth := 0, 0, 0
	for _, r := range reports {
		tag := fmt.Sprintf("#%d", r.ID)
		if len(tag) > idWidth {
			idWidth = len(tag)
		}
		if len(r.URI) > uriWidth {
			uriWidth = len(r.URI)
		}
		if len(r.FeatureName) > nameWidth {
			nameWidth = len(r.FeatureName)
		}
	}

	for _, r := range reports {
		ui.ListRow(w, r.ID, r.URI, r.FeatureName, r.CreatedAt, idWidth, uriWidth, nameWidth)
	}

	return nil
}
