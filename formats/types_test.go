package formats_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/sortlist/formats"
	"github.com/arthur-debert/sortlist/types"
)

func sampleSnapshot() formats.Snapshot {
	return formats.Snapshot{
		Mode: types.ByID,
		Entities: []types.Entity{
			{ID: "item-1", Value: "Apple"},
			{ID: "item-3", Value: "Cherry"},
		},
		History: []types.HistoryEntry{
			{Kind: types.ActionMove, Message: "moved \"Cherry\": 2 -> 1"},
			{Kind: types.ActionDelete, Message: "stale reference", Warning: true},
		},
	}
}

func TestRegistry(t *testing.T) {
	t.Run("BuiltinsRegistered", func(t *testing.T) {
		for _, name := range []string{"text", "markdown"} {
			if _, err := formats.Get(name); err != nil {
				t.Errorf("expected builtin format %q: %v", name, err)
			}
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := formats.Get("carrier-pigeon"); err == nil {
			t.Error("expected an error for an unknown format")
		}
	})

	t.Run("InvalidName", func(t *testing.T) {
		err := formats.Register(&formats.SnapshotFormat{
			Name:   "Not Valid!",
			Render: func(formats.Snapshot) string { return "" },
		})
		if err == nil {
			t.Error("expected invalid names to be rejected")
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		err := formats.Register(&formats.SnapshotFormat{
			Name:   "text",
			Render: func(formats.Snapshot) string { return "" },
		})
		if err == nil {
			t.Error("expected duplicate registration to be rejected")
		}
	})

	t.Run("NilRender", func(t *testing.T) {
		if err := formats.Register(&formats.SnapshotFormat{Name: "hollow"}); err == nil {
			t.Error("expected a format without a render function to be rejected")
		}
	})
}

func TestPlaintext(t *testing.T) {
	format, err := formats.Get("text")
	if err != nil {
		t.Fatal(err)
	}
	out := format.Render(sampleSnapshot())

	for _, want := range []string{
		"Items (by-id):",
		"0. Apple (item-1)",
		"1. Cherry (item-3)",
		"! delete stale reference",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlaintextEmpty(t *testing.T) {
	format, err := formats.Get("text")
	if err != nil {
		t.Fatal(err)
	}
	out := format.Render(formats.Snapshot{Mode: types.ByIndex})
	if strings.Count(out, "(empty)") != 2 {
		t.Errorf("expected empty markers for items and history:\n%s", out)
	}
}

func TestMarkdown(t *testing.T) {
	format, err := formats.Get("markdown")
	if err != nil {
		t.Fatal(err)
	}
	out := format.Render(sampleSnapshot())

	for _, want := range []string{
		"## Items (by-id)",
		"| 0 | Apple | `item-1` |",
		"**delete**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	format, err := formats.Get("markdown")
	if err != nil {
		t.Fatal(err)
	}
	out := format.Render(formats.Snapshot{
		Mode:     types.ByID,
		Entities: []types.Entity{{ID: "item-1", Value: "a|b"}},
	})
	if !strings.Contains(out, `a\|b`) {
		t.Errorf("expected pipes escaped in table cells:\n%s", out)
	}
}
