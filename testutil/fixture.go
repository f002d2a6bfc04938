// Package testutil provides the shared list fixture used across the test
// suites. The fixture uses the counter id strategy and a stepping clock so
// ids and history timestamps are deterministic.
package testutil

import (
	"testing"
	"time"

	"github.com/arthur-debert/sortlist/sortlist"
)

// SeedValues is the display order the fixture starts from.
var SeedValues = []string{"Apple", "Banana", "Cherry", "Dates"}

// FixtureData provides typed access to the seeded entities.
type FixtureData struct {
	Apple  sortlist.Entity // id "item-1", index 0
	Banana sortlist.Entity // id "item-2", index 1
	Cherry sortlist.Entity // id "item-3", index 2
	Dates  sortlist.Entity // id "item-4", index 3

	// ByID maps each seeded id to its entity for convenience.
	ByID map[string]sortlist.Entity
}

// LoadList builds a freshly seeded list in the given reference mode.
func LoadList(t *testing.T, mode sortlist.ReferenceMode) (*sortlist.List, *FixtureData) {
	t.Helper()
	return LoadListWithCapacity(t, mode, 0)
}

// LoadListWithCapacity builds a seeded list with an explicit history
// capacity (0 keeps the package default).
func LoadListWithCapacity(t *testing.T, mode sortlist.ReferenceMode, capacity int) (*sortlist.List, *FixtureData) {
	t.Helper()

	list, err := sortlist.New(sortlist.Config{
		Mode:            mode,
		HistoryCapacity: capacity,
		IDStrategy:      sortlist.StrategyCounter,
		Seed:            SeedValues,
	})
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}

	// Stepping clock: each record lands one second after the previous one.
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	step := 0
	list.SetTimeFunc(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	})

	entities := list.Entities()
	if len(entities) != len(SeedValues) {
		t.Fatalf("expected %d seeded entities, got %d", len(SeedValues), len(entities))
	}

	data := &FixtureData{
		Apple:  entities[0],
		Banana: entities[1],
		Cherry: entities[2],
		Dates:  entities[3],
		ByID:   make(map[string]sortlist.Entity, len(entities)),
	}
	for _, e := range entities {
		data.ByID[e.ID] = e
	}
	return list, data
}

// Values returns the current display values in order.
func Values(list *sortlist.List) []string {
	entities := list.Entities()
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Value
	}
	return out
}
