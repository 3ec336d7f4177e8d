package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chriserin/ftreport/internal/events"
	"github.com/chriserin/ftreport/internal/parser"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events <file>",
	Short: "Print the event log of a feature file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunEvents(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func RunEvents(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc, parseErrors := parser.Parse(path, content)
	if err := parser.Emit(doc, parseErrors, path, events.NewRecorder(w)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
