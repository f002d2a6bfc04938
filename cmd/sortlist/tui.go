package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/sortlist/sortlist"
	"github.com/arthur-debert/sortlist/types"
)

// The TUI is the "gesture layer": it turns key presses into abstract
// reorder/delete/insert requests and renders the snapshots the engine
// exposes. All engine calls happen inside Update, so requests stay serial.

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Delete   key.Binding
	Add      key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

var defaultKeys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
	MoveUp:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "move item up")),
	MoveDown: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "move item down")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	list   *sortlist.List
	keys   keyMap
	cursor int
	status string

	inserting bool
	input     textinput.Model
}

func newModel(list *sortlist.List) model {
	input := textinput.New()
	input.Placeholder = "New item value"
	input.CharLimit = 64

	return model{
		list:   list,
		keys:   defaultKeys,
		status: fmt.Sprintf("%d items, %s mode", list.Len(), list.Mode()),
		input:  input,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.inserting {
		return m.updateInsert(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.MoveUp):
		m = m.moveSelection(-1)

	case key.Matches(keyMsg, m.keys.MoveDown):
		m = m.moveSelection(1)

	case key.Matches(keyMsg, m.keys.Delete):
		m = m.deleteSelection()

	case key.Matches(keyMsg, m.keys.Add):
		m.inserting = true
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(keyMsg, m.keys.Reset):
		m.list.ResetCollection()
		m.cursor = 0
		m.status = "collection reset"
	}

	return m, nil
}

func (m model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.inserting = false
		m.input.Blur()
		if value == "" {
			m.status = "insert cancelled (empty value)"
			return m, nil
		}
		entity, err := m.list.SubmitInsert(value)
		if err != nil {
			m.status = fmt.Sprintf("insert rejected: %v", err)
			return m, nil
		}
		m.cursor = m.list.Len() - 1
		m.status = fmt.Sprintf("inserted %q as %s", entity.Value, entity.ID)
		return m, nil

	case "esc", "ctrl+g":
		m.inserting = false
		m.input.Blur()
		m.status = "insert cancelled"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveSelection submits a reorder request against the neighbouring
// position, addressed the way the configured mode addresses things.
func (m model) moveSelection(delta int) model {
	target := m.cursor + delta
	if target < 0 || target >= m.list.Len() {
		return m
	}

	var req types.ReorderRequest
	switch m.list.Mode() {
	case types.ByID:
		entities := m.list.Entities()
		req = types.ReorderRequest{
			Active: types.IDRef(entities[m.cursor].ID),
			Over:   types.IDRef(entities[target].ID),
		}
	case types.ByIndex:
		req = types.ReorderRequest{
			Active: types.IndexRef(m.cursor),
			Over:   types.IndexRef(target),
		}
	}

	result, err := m.list.SubmitReorder(req)
	if err != nil {
		m.status = fmt.Sprintf("reorder rejected: %v", err)
		return m
	}
	if result != nil {
		m.cursor = result.NewIndex
		m.status = fmt.Sprintf("moved %q to position %d", result.Entity.Value, result.NewIndex)
	}
	return m
}

func (m model) deleteSelection() model {
	if m.list.Len() == 0 {
		return m
	}

	var ref types.Ref
	switch m.list.Mode() {
	case types.ByID:
		ref = types.IDRef(m.list.Entities()[m.cursor].ID)
	case types.ByIndex:
		ref = types.IndexRef(m.cursor)
	}

	if err := m.list.SubmitDelete(ref); err != nil {
		m.status = fmt.Sprintf("delete rejected: %v", err)
		return m
	}
	if m.cursor >= m.list.Len() && m.cursor > 0 {
		m.cursor--
	}
	m.status = "deleted"
	return m
}

func (m model) View() string {
	var b strings.Builder

	mode := modeByIDStyle.Render(m.list.Mode().String())
	if m.list.Mode() == types.ByIndex {
		mode = modeByIndexStyle.Render(m.list.Mode().String())
	}
	b.WriteString(titleStyle.Render("sortlist") + " " + mode + "\n\n")

	for i, e := range m.list.Entities() {
		line := fmt.Sprintf("%s %s", e.Value, idStyle.Render("("+e.ID+")"))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▌ " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.inserting {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	b.WriteString("\n" + historyHeaderStyle.Render("History") + "\n")
	entries := m.list.RecentHistory(historyWindow)
	if len(entries) == 0 {
		b.WriteString(historyStyle.Render("  (empty)") + "\n")
	}
	for _, entry := range entries {
		line := fmt.Sprintf("  %s  %-6s %s",
			entry.Time.Format("15:04:05"), entry.Kind, entry.Message)
		if entry.Warning {
			b.WriteString(warningStyle.Render(line))
		} else {
			b.WriteString(historyStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	b.WriteString(helpStyle.Render(
		"j/k: cursor   ctrl+j/k: reorder   a: add   d: delete   R: reset   q: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
