package sortlist

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arthur-debert/sortlist/internal/validation"
	"github.com/arthur-debert/sortlist/types"
)

// List is the public face of the engine. It owns one collection, one
// history log and one id generator, and translates abstract reorder,
// delete and insert requests into store operations using the configured
// reference mode. A List is confined to a single goroutine; gesture events
// arrive serially and each request runs to completion before the next.
type List struct {
	collection *Collection
	history    *History
	generator  IDGenerator
	mode       types.ReferenceMode
	seed       []string
	logger     *slog.Logger
}

// New creates a List from the given configuration, seeding the collection
// with fresh ids for each configured seed value.
func New(cfg Config) (*List, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	gen, err := NewIDGenerator(cfg.idStrategy(), cfg.IDLength)
	if err != nil {
		return nil, err
	}

	collection, err := NewCollection(SeedEntities(gen, cfg.Seed))
	if err != nil {
		return nil, err
	}

	return &List{
		collection: collection,
		history:    NewHistory(cfg.historyCapacity()),
		generator:  gen,
		mode:       cfg.Mode,
		seed:       append([]string(nil), cfg.Seed...),
		logger:     cfg.logger().With("component", "sortlist"),
	}, nil
}

// SeedEntities assigns a freshly generated id to each seed value, in order.
func SeedEntities(gen IDGenerator, values []string) []types.Entity {
	entities := make([]types.Entity, len(values))
	for i, v := range values {
		entities[i] = types.Entity{ID: gen.Generate(), Value: v}
	}
	return entities
}

// Mode returns the configured reference mode.
func (l *List) Mode() types.ReferenceMode {
	return l.mode
}

// Len returns the number of entities currently in the collection.
func (l *List) Len() int {
	return l.collection.Len()
}

// Entities returns a read-only snapshot of the current sequence.
func (l *List) Entities() []types.Entity {
	return l.collection.Entities()
}

// RecentHistory returns up to n history entries, most recent first.
func (l *List) RecentHistory(n int) []types.HistoryEntry {
	return l.history.Recent(n)
}

// SetTimeFunc sets a custom time function for deterministic history
// timestamps.
func (l *List) SetTimeFunc(fn func() time.Time) {
	l.history.SetTimeFunc(fn)
}

// SubmitReorder places the entity referenced by req.Active at the position
// occupied by req.Over.
//
// In ByIndex mode the raw positions pass straight through to the store.
// The engine cannot tell a stale index from a fresh one, so after a
// deletion a previously valid request silently addresses the wrong entity.
// That failure is the documented property of the mode, not a defect of the
// coordinator.
//
// In ByID mode both ids are resolved to their current positions immediately
// before the move, so the request stays correct regardless of prior
// mutations. An id that no longer resolves aborts the request with
// ErrReferenceStale, recorded as a warning, with no mutation applied.
//
// A request whose active and over references coincide is a no-op and
// returns a nil result. On success the returned MutationResult lets the
// caller update any externally mirrored index-to-entity mapping.
func (l *List) SubmitReorder(req types.ReorderRequest) (*types.MutationResult, error) {
	if err := validation.ReorderRequest(req, l.mode); err != nil {
		return nil, &InvalidRequestError{Op: "reorder", Reason: "malformed reference", Err: err}
	}

	var oldIndex, newIndex int
	switch l.mode {
	case types.ByIndex:
		oldIndex, newIndex = req.Active.Index, req.Over.Index
	case types.ByID:
		if req.Active.ID == req.Over.ID {
			return nil, nil
		}
		oldIndex = l.collection.IndexOf(req.Active.ID)
		newIndex = l.collection.IndexOf(req.Over.ID)
		if oldIndex < 0 || newIndex < 0 {
			err := fmt.Errorf("%w: active %q at %d, over %q at %d",
				ErrReferenceStale, req.Active.ID, oldIndex, req.Over.ID, newIndex)
			l.reject(types.ActionMove, err)
			return nil, err
		}
	}

	result, err := l.collection.Move(oldIndex, newIndex)
	if err != nil {
		l.reject(types.ActionMove, err)
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	msg := fmt.Sprintf("moved %q (active %s, over %s): %d -> %d",
		result.Entity.Value, refString(req.Active), refString(req.Over),
		result.OldIndex, result.NewIndex)
	l.history.Record(types.ActionMove, msg, false)
	l.logger.Info("move applied",
		"id", result.Entity.ID,
		"old_index", result.OldIndex,
		"new_index", result.NewIndex)
	return result, nil
}

// SubmitDelete removes the referenced entity. In ByID mode the reference
// stays correct across prior mutations; in ByIndex mode it is correct only
// until the next structural change.
func (l *List) SubmitDelete(ref types.Ref) error {
	if err := validation.Ref(ref, l.mode); err != nil {
		return &InvalidRequestError{Op: "delete", Reason: "malformed reference", Err: err}
	}

	var removed types.Entity
	var err error
	switch l.mode {
	case types.ByIndex:
		removed, err = l.collection.RemoveAt(ref.Index)
	case types.ByID:
		removed, err = l.collection.RemoveByID(ref.ID)
	}
	if err != nil {
		l.reject(types.ActionDelete, err)
		return err
	}

	msg := fmt.Sprintf("deleted %q (%s)", removed.Value, refString(ref))
	l.history.Record(types.ActionDelete, msg, false)
	l.logger.Info("delete applied", "id", removed.ID, "value", removed.Value)
	return nil
}

// SubmitInsert appends a new entity with a freshly generated id.
func (l *List) SubmitInsert(value string) (types.Entity, error) {
	entity := types.Entity{ID: l.generator.Generate(), Value: value}
	if err := l.collection.Insert(entity); err != nil {
		l.reject(types.ActionInsert, err)
		return types.Entity{}, err
	}

	msg := fmt.Sprintf("inserted %q (%s) at %d", entity.Value, entity.ID, l.collection.Len()-1)
	l.history.Record(types.ActionInsert, msg, false)
	l.logger.Info("insert applied", "id", entity.ID, "value", entity.Value)
	return entity, nil
}

// ResetCollection replaces the sequence with a newly generated seed
// collection (original values and order, fresh ids) and clears the log.
func (l *List) ResetCollection() {
	l.collection.Reset(SeedEntities(l.generator, l.seed))
	l.history.Clear()
	l.logger.Info("collection reset", "entities", len(l.seed))
}

// reject records a recoverable failure as a warning entry. The collection
// was left unmutated.
func (l *List) reject(kind types.ActionKind, err error) {
	l.history.Record(kind, err.Error(), true)
	l.logger.Warn("request rejected", "kind", string(kind), "err", err)
}

func refString(r types.Ref) string {
	if r.ByIndex() {
		return fmt.Sprintf("index %d", r.Index)
	}
	return "id " + r.ID
}

// IsRecoverable reports whether the error belongs to the recoverable
// taxonomy, as opposed to a collaborator contract violation.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrReferenceStale)
}
