package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chriserin/ftreport/internal/config"
	"github.com/chriserin/ftreport/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ftreport in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// .ftreport/ directory
	_, err := os.Stat(config.Dir)
	dirExists := err == nil
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", config.Dir, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", config.Dir)
	} else {
		fmt.Fprintf(w, "%s/ created\n", config.Dir)
	}

	// config
	if _, err := os.Stat(config.Path); err == nil {
		fmt.Fprintf(w, "%s already exists\n", config.Path)
	} else {
		if err := config.Write(config.Path, config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(w, "%s created\n", config.Path)
	}

	cfg, err := config.Load(config.Path)
	if err != nil {
		return err
	}

	// archive
	_, err = os.Stat(cfg.ArchivePath)
	dbExists := err == nil
	sqlDB, err := db.Open(cfg.ArchivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", cfg.ArchivePath)
	} else {
		fmt.Fprintf(w, "%s created\n", cfg.ArchivePath)
	}

	// gitignore
	msgs, err := ensureGitignore(cfg.ArchivePath)
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore(entry string) ([]string, error) {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
