// Package sortlist provides an identity-preserving reorder engine for
// ordered collections, plus a bounded log of every accepted mutation.
//
// Each entity carries a stable, opaque id independent of its position, so
// reorder and delete requests addressed by id stay correct across any
// sequence of prior mutations. The package also implements raw-index
// addressing as a deliberate contrast: that mode reproduces the classic
// stale-index failure where a deletion silently shifts what an index means.
package sortlist

import "github.com/arthur-debert/sortlist/types"

// Aliases for the shared core types, so most callers only import this
// package.

// Entity is an alias for types.Entity
type Entity = types.Entity

// Ref is an alias for types.Ref
type Ref = types.Ref

// ReorderRequest is an alias for types.ReorderRequest
type ReorderRequest = types.ReorderRequest

// HistoryEntry is an alias for types.HistoryEntry
type HistoryEntry = types.HistoryEntry

// MutationResult is an alias for types.MutationResult
type MutationResult = types.MutationResult

// ReferenceMode is an alias for types.ReferenceMode
type ReferenceMode = types.ReferenceMode

// Reference modes re-exported for convenience.
const (
	ByID    = types.ByID
	ByIndex = types.ByIndex
)

// IDRef references an entity by its stable id.
func IDRef(id string) types.Ref { return types.IDRef(id) }

// IndexRef references an entity by its current position.
func IndexRef(index int) types.Ref { return types.IndexRef(index) }
