package cli

import (
	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Roster service.RosterService
	// Config is the base configuration (defaults, SHIFTROSTER_CONFIG file,
	// environment). Command flags are layered over a copy of it.
	Config config.Config

	// IsInteractive reports whether stdout is a terminal. Styled tables and
	// the progress spinner are only shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shiftroster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftroster",
		Short:         "Extract staff shift rosters from PDF duty schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExtractCmd(app),
		newTokenizeCmd(app),
		newRunsCmd(app),
	)

	return root
}
