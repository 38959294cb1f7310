package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leadscout/internal/ledger"
)

func runsCmd(dataDir *string) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "runs",
		Short: "List recent extraction runs from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := ensureDataDir(*dataDir)
			if err != nil {
				return err
			}

			db, err := ledger.Open(filepath.Join(dir, "leadscout.db"))
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			for _, r := range runs {
				fmt.Printf("- [%s] %s  company=%s employees=%d decision_makers=%d\n",
					strings.ToUpper(r.Status), r.StartedAt.Format(time.RFC3339),
					r.CompanySlug, r.Employees, r.DecisionMakers)
				for _, p := range r.Outputs {
					fmt.Printf("    %s\n", p)
				}
				if r.Error != "" {
					fmt.Printf("    error: %s\n", r.Error)
				}
			}
			return nil
		},
	}

	c.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return c
}
