package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/sortlist/formats"
	"github.com/arthur-debert/sortlist/sortlist"
	"github.com/arthur-debert/sortlist/types"
)

func textFormat(t *testing.T) *formats.SnapshotFormat {
	t.Helper()
	format, err := formats.Get("text")
	if err != nil {
		t.Fatalf("text format not registered: %v", err)
	}
	return format
}

func newTestList(t *testing.T, mode types.ReferenceMode) *sortlist.List {
	t.Helper()
	list, err := sortlist.New(sortlist.Config{
		Mode:       mode,
		IDStrategy: sortlist.StrategyCounter,
		Seed:       []string{"Apple", "Banana", "Cherry", "Dates"},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}
	return list
}

func TestRunScriptByID(t *testing.T) {
	list := newTestList(t, types.ByID)

	script := strings.Join([]string{
		"# the walkthrough scenario",
		"delete item-2",
		"move item-4 item-1",
		"insert Elderberry",
	}, "\n")

	var out strings.Builder
	if err := runScript(list, strings.NewReader(script), &out, textFormat(t)); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"0. Dates (item-4)",
		"1. Apple (item-1)",
		"2. Cherry (item-3)",
		"3. Elderberry (item-5)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Banana") {
		t.Errorf("Banana should be gone:\n%s", got)
	}
}

func TestRunScriptSurvivesRejections(t *testing.T) {
	list := newTestList(t, types.ByID)

	script := strings.Join([]string{
		"delete item-2",
		"move item-2 item-1", // stale: item-2 was just deleted
		"delete item-99",     // never existed
	}, "\n")

	var out strings.Builder
	if err := runScript(list, strings.NewReader(script), &out, textFormat(t)); err != nil {
		t.Fatalf("recoverable rejections should not abort the script: %v", err)
	}
	if !strings.Contains(out.String(), "!") {
		t.Errorf("expected warning-flagged history entries:\n%s", out.String())
	}
	if got := list.Len(); got != 3 {
		t.Errorf("expected 3 items after one successful delete, got %d", got)
	}
}

func TestRunScriptByIndexStaleness(t *testing.T) {
	list := newTestList(t, types.ByIndex)

	// "move 2 0" was written against the seeded order, where index 2 was
	// Cherry. After the delete it addresses Dates, and nothing complains.
	script := strings.Join([]string{
		"delete 1",
		"move 2 0",
	}, "\n")

	var out strings.Builder
	if err := runScript(list, strings.NewReader(script), &out, textFormat(t)); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if !strings.Contains(out.String(), "0. Dates (item-4)") {
		t.Errorf("expected the stale index to move Dates:\n%s", out.String())
	}
}

func TestRunScriptRejectsMalformedLines(t *testing.T) {
	cases := []string{
		"move item-1",
		"teleport item-1 item-2",
		"delete",
	}
	for _, script := range cases {
		list := newTestList(t, types.ByID)
		var out strings.Builder
		if err := runScript(list, strings.NewReader(script), &out, textFormat(t)); err == nil {
			t.Errorf("expected %q to abort the script", script)
		}
	}
}

func TestParseRef(t *testing.T) {
	ref, err := parseRef("item-3", types.ByID)
	if err != nil || ref.ByIndex() || ref.ID != "item-3" {
		t.Errorf("unexpected id ref %+v, %v", ref, err)
	}

	ref, err = parseRef("2", types.ByIndex)
	if err != nil || !ref.ByIndex() || ref.Index != 2 {
		t.Errorf("unexpected index ref %+v, %v", ref, err)
	}

	if _, err := parseRef("item-3", types.ByIndex); err == nil {
		t.Error("expected an error for a non-numeric position")
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "items:\n  - Apple\n  - Banana\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	seed, err := loadSeedFile(path)
	if err != nil {
		t.Fatalf("failed to load seed file: %v", err)
	}
	if len(seed) != 2 || seed[0] != "Apple" || seed[1] != "Banana" {
		t.Errorf("unexpected seed: %v", seed)
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("items: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSeedFile(empty); err == nil {
		t.Error("expected an error for an empty seed file")
	}
}
