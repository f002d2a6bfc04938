package types

import "time"

// Entity represents one item in an ordered collection.
type Entity struct {
	ID    string // Stable identifier, immutable once assigned, never reused
	Value string // Display value, the only mutable field
}

// ReferenceMode controls how reorder and delete requests address entities.
type ReferenceMode int

const (
	// ByID addresses entities through their stable identifiers. This is the
	// correct mode: references stay valid across any sequence of mutations.
	ByID ReferenceMode = iota

	// ByIndex addresses entities through raw positions. This mode is kept
	// deliberately: after a deletion, previously handed-out indexes silently
	// point at the wrong entity, and the engine has no way to tell a stale
	// index from a fresh one. It exists to be contrasted against ByID.
	ByIndex
)

// String returns the mode name as used in configuration files and flags.
func (m ReferenceMode) String() string {
	switch m {
	case ByID:
		return "by-id"
	case ByIndex:
		return "by-index"
	default:
		return "unknown"
	}
}

// ParseReferenceMode converts a mode name back to a ReferenceMode.
// The second return value reports whether the name was recognized.
func ParseReferenceMode(s string) (ReferenceMode, bool) {
	switch s {
	case "by-id":
		return ByID, true
	case "by-index":
		return ByIndex, true
	default:
		return ByID, false
	}
}

// Ref is a reference to one entity, carrying either a stable id or a raw
// index depending on the owning collection's ReferenceMode. The zero Ref is
// malformed and rejected loudly, since it means the gesture layer produced
// a request without a target.
type Ref struct {
	ID    string
	Index int

	byIndex bool
}

// IDRef references an entity by its stable id.
func IDRef(id string) Ref {
	return Ref{ID: id, Index: -1}
}

// IndexRef references an entity by its current position.
func IndexRef(index int) Ref {
	return Ref{Index: index, byIndex: true}
}

// ByIndex reports whether the reference carries a raw position.
func (r Ref) ByIndex() bool {
	return r.byIndex
}

// IsZero reports whether the reference was never populated.
func (r Ref) IsZero() bool {
	return !r.byIndex && r.ID == "" && r.Index == 0
}

// ReorderRequest asks to place the entity referenced by Active at the
// position currently occupied by the entity referenced by Over. Both
// references must use the same mode, matching the collection's configuration.
type ReorderRequest struct {
	Active Ref
	Over   Ref
}

// ActionKind tags a history entry with the mutation it records.
type ActionKind string

const (
	ActionMove   ActionKind = "move"
	ActionInsert ActionKind = "insert"
	ActionDelete ActionKind = "delete"
	ActionReset  ActionKind = "reset"
)

// HistoryEntry is one record in the bounded action log. Warning entries
// record rejected requests; the collection was left untouched for those.
type HistoryEntry struct {
	Kind    ActionKind
	Message string
	Time    time.Time
	Warning bool
}

// MutationResult describes an applied move so callers can update any
// externally mirrored index-to-entity mapping. A nil *MutationResult from a
// successful call means the request was a no-op.
type MutationResult struct {
	Entity   Entity
	OldIndex int
	NewIndex int
}
