package cli

import (
	"fmt"

	"github.com/alexanderramin/ticklist/internal/config"
	"github.com/alexanderramin/ticklist/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the service and terminal hooks used by CLI commands.
type App struct {
	Items service.ItemService

	// Bootstrap builds Items from the parsed persistent flags. It runs
	// before any subcommand when Items is still nil.
	Bootstrap func(cmd *cobra.Command) (service.ItemService, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// PromptText asks for one line of item text. Defaults to a huh input.
	PromptText func(title, initial string) (string, error)

	// RunTUI runs a full-screen model. Defaults to a tea.Program.
	RunTUI func(model tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) promptText(title, initial string) (string, error) {
	if a.PromptText != nil {
		return a.PromptText(title, initial)
	}
	return promptItemText(title, initial)
}

func (a *App) runTUI(model tea.Model) error {
	if a.RunTUI != nil {
		return a.RunTUI(model)
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func (a *App) ensureItems(cmd *cobra.Command) error {
	if a.Items != nil {
		return nil
	}
	if a.Bootstrap == nil {
		return fmt.Errorf("item service is not configured")
	}
	items, err := a.Bootstrap(cmd)
	if err != nil {
		return err
	}
	a.Items = items
	return nil
}

// needsStore reports whether cmd works on the list. Help and shell
// completion run without opening storage, so a broken config cannot
// hide them.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// NewRootCmd creates the top-level "ticklist" command and registers all
// subcommands against the provided App. Run without arguments on a
// terminal it opens the interactive list.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ticklist",
		Short:         "A small task list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return app.ensureItems(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return app.runTUI(newListModel(app.Items))
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newToggleCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newTUICmd(app),
	)

	return root
}
