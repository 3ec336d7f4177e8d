package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chriserin/ftreport/internal/db"
	"github.com/chriserin/ftreport/internal/model"
	"github.com/chriserin/ftreport/internal/ui"
	"github.com/chriserin/ftreport/internal/value"
	"github.com/spf13/cobra"
)

const noResult = "no-result"

var statusOrder = []string{
	model.StatusPassed,
	model.StatusFailed,
	model.StatusPending,
	model.StatusUndefined,
	model.StatusSkipped,
}

var statusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Count step results in an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer, rawID string) error {
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

	var doc value.Value
	if err := json.Unmarshal([]byte(r.Document), &doc); err != nil {
		return fmt.Errorf("report %d holds invalid JSON: %w", id, err)
	}

	counts, total := countStepStatuses(doc.AsMap())
	fmt.Fprintf(w, "Steps: %d\n", total)

	for _, status := range orderedStatuses(counts) {
		ui.StatusCount(w, status, counts[status])
	}
	return nil
}

// countStepStatuses tallies result statuses across every step of every
// element. Steps without a result count as no-result.
func countStepStatuses(root *value.Map) (map[string]int, int) {
	counts := map[string]int{}
	total := 0
	if root == nil {
		return counts, 0
	}

	elements, _ := root.Get("elements")
	if elements.AsList() == nil {
		return counts, 0
	}
	for _, el := range elements.AsList().Items() {
		if el.AsMap() == nil {
			continue
		}
		steps, _ := el.AsMap().Get("steps")
		if steps.AsList() == nil {
			continue
		}
		for _, st := range steps.AsList().Items() {
			if st.AsMap() == nil {
				continue
			}
			total++
			status := noResult
			if res, ok := st.AsMap().Get("result"); ok && res.AsMap() != nil {
				if s := res.AsMap().GetString("status"); s != "" {
					status = s
				}
			}
			counts[status]++
		}
	}
	return counts, total
}

// orderedStatuses lists known statuses first, then any others by name,
// with no-result last.
func orderedStatuses(counts map[string]int) []string {
	known := map[string]bool{noResult: true}
	var out []string
	for _, s := range statusOrder {
		known[s] = true
		if counts[s] > 0 {
			out = append(out, s)
		}
	}

	var other []string
	for s := range counts {
		if !known[s] {
			other = append(other, s)
		}
	}
	sort.Strings(other)
	out = append(out, other...)

	if counts[noResult] > 0 {
		out = append(out, noResult)
	}
	return out
}
