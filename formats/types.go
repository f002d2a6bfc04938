// Package formats renders list snapshots for non-interactive consumers.
// Formats register themselves by name so callers can select one at runtime.
package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sortlist/types"
)

// Snapshot is the read-only state a renderer works from: the current
// sequence plus the recent slice of the action history, most recent first.
type Snapshot struct {
	Mode     types.ReferenceMode
	Entities []types.Entity
	History  []types.HistoryEntry
}

// SnapshotFormat defines how a snapshot is rendered
type SnapshotFormat struct {
	// Name is the format identifier (alphanumeric, dashes, underscores, lowercase)
	Name string

	// Render converts a snapshot into its textual representation
	Render func(s Snapshot) string
}

// registry holds all available snapshot formats
var registry = make(map[string]*SnapshotFormat)

// Register adds a new snapshot format to the registry
func Register(format *SnapshotFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}
	if format.Render == nil {
		return fmt.Errorf("format %q has no render function", format.Name)
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns a snapshot format by name
func Get(name string) (*SnapshotFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return format, nil
}

// List returns all registered format names
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// isValidFormatName checks that a name is lowercase alphanumeric with
// dashes and underscores only
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_') {
			return false
		}
	}
	return true
}
