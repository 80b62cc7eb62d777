package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/alexanderramin/ticklist/internal/service"
	"github.com/alexanderramin/ticklist/internal/teatest"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// TestDriver wraps teatest.Driver with access to listModel state.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds a listModel over svc, sizes it and drains Init.
func NewTestDriver(t *testing.T, svc service.ItemService) *TestDriver {
	t.Helper()
	d := teatest.New(t, newListModel(svc), teatest.WithSize(100, 30))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) model() listModel {
	return d.Model.(listModel)
}

// Items returns the list the model is currently showing.
func (d *TestDriver) Items() []domain.Item { return d.model().items }

// Cursor returns the selected row.
func (d *TestDriver) Cursor() int { return d.model().cursor }

// Mode returns the input mode.
func (d *TestDriver) Mode() listMode { return d.model().mode }

// InputValue returns the text input's content.
func (d *TestDriver) InputValue() string { return d.model().input.Value() }

// Notice returns the notice line, if any.
func (d *TestDriver) Notice() string { return d.model().notice }

// PlainView returns the rendered view without ANSI sequences.
func (d *TestDriver) PlainView() string { return stripANSI(d.View()) }

// AddItem opens the input, types text, submits and leaves add mode.
func (d *TestDriver) AddItem(text string) {
	d.T.Helper()
	d.PressKey('a')
	d.Type(text)
	d.PressEnter()
	d.PressEsc()
}
