package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ticklist/internal/cli/formatter"
	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/alexanderramin/ticklist/internal/persist"
	"github.com/alexanderramin/ticklist/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listMode int

const (
	modeBrowse listMode = iota
	modeAdd
	modeEdit
)

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultListKeyMap() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// itemsChangedMsg reports that a load or mutation finished. The list is
// read from the service when the message is handled, so results arriving
// out of order never put an older list on screen.
type itemsChangedMsg struct {
	seq int
	err error

	// focusID moves the cursor to this item when it is in the list.
	focusID string
}

// listModel is the interactive list: a cursor over the items and one
// text input used for both adding and editing.
type listModel struct {
	svc    service.ItemService
	items  []domain.Item
	cursor int
	mode   listMode
	editID string
	input  textinput.Model
	help   help.Model
	keys   listKeyMap
	notice string
	width  int

	// issued counts mutations sent; applied is the newest one whose
	// notice and focus are on screen.
	issued  int
	applied int
}

func newListModel(svc service.ItemService) listModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 500

	return listModel{
		svc:   svc,
		input: ti,
		help:  help.New(),
		keys:  defaultListKeyMap(),
	}
}

func (m listModel) Init() tea.Cmd {
	return func() tea.Msg {
		return itemsChangedMsg{}
	}
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		return m, nil

	case itemsChangedMsg:
		m.items = m.svc.Items()
		if msg.seq >= m.applied {
			m.applied = msg.seq
			if msg.focusID != "" {
				if i := domain.Find(m.items, msg.focusID); i >= 0 {
					m.cursor = i
				}
			}
			m.notice = noticeFor(msg.err)
		}
		m.cursor = max(min(m.cursor, len(m.items)-1), 0)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m listModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = it.ID
			m.input.SetValue(it.Text)
			m.input.CursorEnd()
			cmd := m.input.Focus()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			svc := m.svc
			cmd := m.mutate(it.ID, func(ctx context.Context) error {
				_, err := svc.Toggle(ctx, it.ID)
				return err
			})
			return m, cmd
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			svc := m.svc
			cmd := m.mutate("", func(ctx context.Context) error {
				_, err := svc.Delete(ctx, it.ID)
				return err
			})
			return m, cmd
		}
	}
	return m, nil
}

func (m listModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if domain.ValidateText(text) != nil {
			return m, nil
		}
		if m.mode == modeEdit {
			id := m.editID
			m.leaveInput()
			svc := m.svc
			cmd := m.mutate(id, func(ctx context.Context) error {
				_, err := svc.Edit(ctx, id, text)
				return err
			})
			return m, cmd
		}
		m.input.Reset()
		cmd := m.addCmd(text)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *listModel) leaveInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.input.Reset()
	m.input.Blur()
}

func (m listModel) selected() (domain.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Item{}, false
	}
	return m.items[m.cursor], true
}

// mutate runs op against the service and reports when it is done.
func (m *listModel) mutate(focusID string, op func(ctx context.Context) error) tea.Cmd {
	m.issued++
	seq := m.issued
	return func() tea.Msg {
		err := op(context.Background())
		return itemsChangedMsg{seq: seq, focusID: focusID, err: err}
	}
}

func (m *listModel) addCmd(text string) tea.Cmd {
	m.issued++
	seq := m.issued
	svc := m.svc
	return func() tea.Msg {
		item, err := svc.Add(context.Background(), text)
		return itemsChangedMsg{seq: seq, focusID: item.ID, err: err}
	}
}

func noticeFor(err error) string {
	if err == nil {
		return ""
	}
	var saveErr *persist.SaveError
	if errors.As(err, &saveErr) {
		return saveNotice(saveErr)
	}
	return err.Error()
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("TICKLIST"))
	b.WriteString("  ")
	b.WriteString(formatter.FormatSummary(m.items))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing to do. Press a to add an item.") + "\n")
	}
	for i, it := range m.items {
		b.WriteString(m.renderRow(i, it))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	switch m.mode {
	case modeAdd:
		b.WriteString(formatter.StyleHeader.Render("Add: ") + m.input.View() + "\n")
	case modeEdit:
		b.WriteString(formatter.StyleHeader.Render("Edit: ") + m.input.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString(formatter.Warning(m.notice) + "\n")
	}
	b.WriteString(m.help.ShortHelpView(m.helpBindings()))
	return b.String()
}

func (m listModel) renderRow(i int, it domain.Item) string {
	cursor := "  "
	if i == m.cursor && m.mode != modeAdd {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	text := it.Text
	if m.width > 0 {
		text = formatter.Truncate(text, m.width-8)
	}
	line := fmt.Sprintf("%s%s %s", cursor, formatter.StatusMark(it.Done), formatter.ItemText(text, it.Done))
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func (m listModel) helpBindings() []key.Binding {
	if m.mode != modeBrowse {
		return []key.Binding{m.keys.Submit, m.keys.Cancel}
	}
	return []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Edit,
		m.keys.Toggle, m.keys.Delete, m.keys.Quit,
	}
}
