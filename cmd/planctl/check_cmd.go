package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/acadplan/internal/ingest"
)

func newCheckCmd(app *App) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "check <course>",
		Short: "Check whether a ledger satisfies a course's prerequisites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.buildSession()
			if err != nil {
				return err
			}

			ledger, err := ingest.LoadLedger(ledgerPath)
			if err != nil {
				return err
			}

			result, err := session.Evaluate(args[0], ledger)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "Student course record JSON file")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}
