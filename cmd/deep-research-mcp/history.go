package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvaldez/deep-research-mcp/internal/archive"
)

var (
	historyLimit     int
	historyWithNotes bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived research sessions",
	Long: `Lists research sessions recorded by the session archive, newest first.
Each start_deep_research or deep-research invocation opens one session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Archive.Enabled {
			return fmt.Errorf("session archive is disabled in configuration")
		}

		store, err := archive.New(archive.Config{DataDir: cfg.Archive.DataDir})
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer store.Close()

		sessions, err := store.Sessions(historyLimit)
		if err != nil {
			return fmt.Errorf("listing sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No archived research sessions.")
			return nil
		}

		for _, sess := range sessions {
			fmt.Printf("%s  %s  (%d notes)\n  %s\n", sess.StartedAt, sess.ID, sess.NoteCount, sess.Question)
			if historyWithNotes {
				notes, err := store.SessionNotes(sess.ID)
				if err != nil {
					fmt.Fprintf(os.Stderr, "  warning: reading notes: %v\n", err)
					continue
				}
				for _, n := range notes {
					fmt.Printf("    - %s\n", n.Text)
				}
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum sessions to list")
	historyCmd.Flags().BoolVar(&historyWithNotes, "notes", false, "include each session's notes")
	rootCmd.AddCommand(historyCmd)
}
