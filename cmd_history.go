//go:build !lambda

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists or shows stored runs
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List stored runs, or print the survivors of one",
	Long: `Reads the run history kept with --db.

Examples:
  usi-optimizer history --db runs.db
  usi-optimizer history --db runs.db 6f0c...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.DBPath == "" {
		return errors.New("history needs --db or USI_DB")
	}
	store, err := OpenRunStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		rec, err := store.LoadRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-36s %-20s %9s %9s\n", "ID", "Created", "MaxLinks", "Survivors")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 77))
	for _, r := range runs {
		fmt.Fprintf(out, "%-36s %-20s %9d %9d\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.MaxLinks, r.Survivors)
	}
	return nil
}
