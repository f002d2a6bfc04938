package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/sortlist/types"
)

func pressKey(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func pressRune(t *testing.T, m model, r rune) model {
	t.Helper()
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func itemValues(m model) []string {
	entities := m.list.Entities()
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Value
	}
	return out
}

func TestTUIMoveSelection(t *testing.T) {
	m := newModel(newTestList(t, types.ByID))

	// Cursor on Apple; ctrl+j swaps it with Banana and follows the item.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlJ})
	if got := itemValues(m); got[0] != "Banana" || got[1] != "Apple" {
		t.Fatalf("unexpected order after move: %v", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor should follow the moved item, got %d", m.cursor)
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if got := itemValues(m); got[0] != "Apple" {
		t.Fatalf("unexpected order after move back: %v", got)
	}

	// Moving past the top edge is ignored.
	m.cursor = 0
	before := itemValues(m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	after := itemValues(m)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("edge move mutated the list: %v -> %v", before, after)
		}
	}
}

func TestTUIDeleteClampsCursor(t *testing.T) {
	m := newModel(newTestList(t, types.ByID))
	m.cursor = 3

	m = pressRune(t, m, 'd')
	if m.list.Len() != 3 {
		t.Fatalf("expected 3 items after delete, got %d", m.list.Len())
	}
	if m.cursor != 2 {
		t.Errorf("cursor should clamp to the new last index, got %d", m.cursor)
	}
}

func TestTUIInsertFlow(t *testing.T) {
	m := newModel(newTestList(t, types.ByID))

	m = pressRune(t, m, 'a')
	if !m.inserting {
		t.Fatal("expected insert prompt to open")
	}

	for _, r := range "Fig" {
		m = pressRune(t, m, r)
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.inserting {
		t.Fatal("expected insert prompt to close")
	}
	values := itemValues(m)
	if values[len(values)-1] != "Fig" {
		t.Fatalf("expected Fig appended, got %v", values)
	}
	if m.cursor != len(values)-1 {
		t.Errorf("cursor should land on the new item, got %d", m.cursor)
	}
}

func TestTUIInsertCancel(t *testing.T) {
	m := newModel(newTestList(t, types.ByID))

	m = pressRune(t, m, 'a')
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inserting {
		t.Fatal("expected esc to cancel the prompt")
	}
	if m.list.Len() != 4 {
		t.Errorf("cancelled insert must not mutate the list, got %d items", m.list.Len())
	}
}

func TestTUIResetKey(t *testing.T) {
	m := newModel(newTestList(t, types.ByID))
	m = pressRune(t, m, 'd')
	m = pressRune(t, m, 'R')

	if m.list.Len() != 4 {
		t.Fatalf("expected reseeded list, got %d items", m.list.Len())
	}
	if len(m.list.RecentHistory(10)) != 0 {
		t.Error("expected empty history after reset")
	}
}

func TestTUIViewRendersModeAndHistory(t *testing.T) {
	m := newModel(newTestList(t, types.ByIndex))
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlJ})

	view := m.View()
	if !strings.Contains(view, "by-index") {
		t.Error("view should show the reference mode")
	}
	if !strings.Contains(view, "History") {
		t.Error("view should render the history panel")
	}
	if !strings.Contains(view, "Apple") || !strings.Contains(view, "Banana") {
		t.Error("view should render the items")
	}
}
