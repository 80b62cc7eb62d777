package cli

import (
	"github.com/alexanderramin/ticklist/internal/cli/formatter"
	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ticklistHuhTheme returns a huh theme using the formatter palette.
func ticklistHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// itemTextForm returns a single-field form that refuses blank text.
func itemTextForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("What needs doing?").
				Value(value).
				Validate(domain.ValidateText),
		),
	).WithTheme(ticklistHuhTheme()).WithShowHelp(false)
}

// promptItemText runs itemTextForm on the terminal, prefilled with initial.
func promptItemText(title, initial string) (string, error) {
	value := initial
	if err := itemTextForm(title, &value).Run(); err != nil {
		return "", err
	}
	return value, nil
}
