package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBlockingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocking <course>",
		Short: "Show which courses a course unlocks, directly and transitively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.buildSession()
			if err != nil {
				return err
			}

			factor, err := session.BlockingFactor(args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(factor); err != nil {
				return fmt.Errorf("encoding blocking factor: %w", err)
			}
			return nil
		},
	}

	return cmd
}
