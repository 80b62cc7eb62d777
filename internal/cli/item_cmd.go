package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ticklist/internal/cli/formatter"
	"github.com/alexanderramin/ticklist/internal/persist"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [TEXT...]",
		Short: "Add an item to the end of the list",
		Long:  "Add an item. The words are joined with spaces. Without words on a terminal, prompts for the text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				if !app.interactive() {
					return fmt.Errorf("item text is required")
				}
				var err error
				if text, err = app.promptText("New item", ""); err != nil {
					return err
				}
			}

			item, err := app.Items.Add(cmd.Context(), text)
			if err = reportSaveError(cmd, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", formatter.TruncID(item.ID), item.Text)
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var group, asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Items.Items()
			if asJSON {
				data, err := persist.Encode(items)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemList(items, formatter.ListOptions{Group: group}))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&group, "group", "g", false, "List pending items first, then done items")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as a snapshot JSON document")

	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle REF",
		Short: "Mark an item done, or not done again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok, err := resolveItemID(app.Items.Items(), args[0])
			if err != nil || !ok {
				return nothingChanged(cmd, args[0], err)
			}
			changed, err := app.Items.Toggle(cmd.Context(), id)
			if err = reportSaveError(cmd, err); err != nil {
				return err
			}
			if !changed {
				return nothingChanged(cmd, args[0], nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeItem(app, id, "Toggled"))
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit REF [TEXT...]",
		Short: "Replace an item's text",
		Long:  "Replace an item's text. Without words on a terminal, prompts with the current text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Items.Items()
			id, ok, err := resolveItemID(items, args[0])
			if err != nil || !ok {
				return nothingChanged(cmd, args[0], err)
			}

			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				if !app.interactive() {
					return fmt.Errorf("new text is required")
				}
				for _, it := range items {
					if it.ID == id {
						text = it.Text
					}
				}
				if text, err = app.promptText("Edit item", text); err != nil {
					return err
				}
			}

			changed, err := app.Items.Edit(cmd.Context(), id, text)
			if err = reportSaveError(cmd, err); err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "Text unchanged; nothing changed.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeItem(app, id, "Edited"))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete REF",
		Aliases: []string{"rm"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Items.Items()
			id, ok, err := resolveItemID(items, args[0])
			if err != nil || !ok {
				return nothingChanged(cmd, args[0], err)
			}
			var text string
			for _, it := range items {
				if it.ID == id {
					text = it.Text
				}
			}

			changed, err := app.Items.Delete(cmd.Context(), id)
			if err = reportSaveError(cmd, err); err != nil {
				return err
			}
			if !changed {
				return nothingChanged(cmd, args[0], nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", formatter.TruncID(id), text)
			return nil
		},
	}
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(newListModel(app.Items))
		},
	}
}

// nothingChanged reports an unmatched reference. It is not a failure;
// only an ambiguous prefix is returned as an error.
func nothingChanged(cmd *cobra.Command, ref string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No item matches %q; nothing changed.\n", ref)
	return nil
}

// describeItem renders "<verb> <id> [x] <text>" for the item's current state.
func describeItem(app *App, id, verb string) string {
	for _, it := range app.Items.Items() {
		if it.ID == id {
			return fmt.Sprintf("%s %s %s %s", verb, formatter.TruncID(it.ID), formatter.StatusMark(it.Done), it.Text)
		}
	}
	return fmt.Sprintf("%s %s", verb, formatter.TruncID(id))
}
