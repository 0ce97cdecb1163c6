// planctl runs prerequisite and degree-plan analysis from JSON files, without
// a running server or database.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/acadplan/internal/ingest"
	"github.com/yigit/acadplan/internal/planner"
)

// App carries the file paths and logger shared by every subcommand.
type App struct {
	catalogPath string
	rulesPath   string
	groupsPath  string
	verbose     bool

	logger zerolog.Logger
}

// buildSession loads the planning data files and builds a session. Each
// invocation is one session: planctl is a batch tool, not a daemon.
func (app *App) buildSession() (*planner.Session, error) {
	catalog, err := ingest.LoadCatalog(app.catalogPath)
	if err != nil {
		return nil, err
	}

	rules := planner.NewRuleSet(nil)
	if app.rulesPath != "" {
		rules, err = ingest.LoadRules(app.rulesPath)
		if err != nil {
			return nil, err
		}
	}

	var groups []planner.RequirementGroup
	if app.groupsPath != "" {
		groups, err = ingest.LoadGroups(app.groupsPath)
		if err != nil {
			return nil, err
		}
	}

	return planner.NewSession(catalog, rules, groups, planner.DefaultPolicy(), app.logger)
}

func newRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "planctl",
		Short:         "Prerequisite and degree-plan analysis from JSON files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if app.verbose {
				level = zerolog.DebugLevel
			}
			app.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().StringVar(&app.catalogPath, "catalog", "catalog.json", "Course catalog JSON file")
	cmd.PersistentFlags().StringVar(&app.rulesPath, "rules", "", "Prerequisite rules JSON file")
	cmd.PersistentFlags().StringVar(&app.groupsPath, "groups", "", "Requirement groups JSON file")
	cmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newCheckCmd(app),
		newPlanCmd(app),
		newBlockingCmd(app),
	)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
