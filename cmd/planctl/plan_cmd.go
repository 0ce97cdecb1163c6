package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/acadplan/internal/ingest"
)

func newPlanCmd(app *App) *cobra.Command {
	var ledgerPath, major, track string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compose a full degree-plan recommendation set",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.buildSession()
			if err != nil {
				return err
			}

			ledger, err := ingest.LoadLedger(ledgerPath)
			if err != nil {
				return err
			}

			set, err := session.Plan(ledger, major, track)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(set); err != nil {
				return fmt.Errorf("encoding plan: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "Student course record JSON file")
	cmd.Flags().StringVar(&major, "major", "", "Major code")
	cmd.Flags().StringVar(&track, "track", "", "Track within the major")
	_ = cmd.MarkFlagRequired("ledger")
	_ = cmd.MarkFlagRequired("major")

	return cmd
}
