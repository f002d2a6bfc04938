package sortlist

import (
	"fmt"

	"github.com/arthur-debert/sortlist/types"
)

// Collection holds the ordered sequence of entities and the structural
// operations on it. Sequence order is the sole source of truth for display
// order; entities carry no position of their own. All operations run to
// completion synchronously, so observers see the sequence either fully
// before or fully after a mutation.
type Collection struct {
	entities []types.Entity
}

// NewCollection creates a collection holding the given seed entities.
// The seed must already carry unique ids.
func NewCollection(seed []types.Entity) (*Collection, error) {
	c := &Collection{}
	for _, e := range seed {
		if err := c.Insert(e); err != nil {
			return nil, fmt.Errorf("seeding collection: %w", err)
		}
	}
	return c, nil
}

// Len returns the number of entities.
func (c *Collection) Len() int {
	return len(c.entities)
}

// Entities returns a copy of the current sequence, in display order.
func (c *Collection) Entities() []types.Entity {
	out := make([]types.Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// Get returns the entity at index.
func (c *Collection) Get(index int) (types.Entity, error) {
	if index < 0 || index >= len(c.entities) {
		return types.Entity{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, len(c.entities))
	}
	return c.entities[index], nil
}

// IndexOf returns the current position of the entity with the given id,
// or -1 when no such entity exists.
func (c *Collection) IndexOf(id string) int {
	for i, e := range c.entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Move removes the entity at oldIndex and reinserts it at newIndex,
// shifting the entities in between by one position. Equal indexes are a
// no-op and return a nil result. Either index outside [0, len) fails with
// ErrOutOfRange.
func (c *Collection) Move(oldIndex, newIndex int) (*types.MutationResult, error) {
	n := len(c.entities)
	if oldIndex < 0 || oldIndex >= n {
		return nil, fmt.Errorf("%w: old index %d, length %d", ErrOutOfRange, oldIndex, n)
	}
	if newIndex < 0 || newIndex >= n {
		return nil, fmt.Errorf("%w: new index %d, length %d", ErrOutOfRange, newIndex, n)
	}
	if oldIndex == newIndex {
		return nil, nil
	}

	moved := c.entities[oldIndex]
	c.entities = append(c.entities[:oldIndex], c.entities[oldIndex+1:]...)
	c.entities = append(c.entities, types.Entity{})
	copy(c.entities[newIndex+1:], c.entities[newIndex:])
	c.entities[newIndex] = moved

	return &types.MutationResult{Entity: moved, OldIndex: oldIndex, NewIndex: newIndex}, nil
}

// Insert appends an entity to the end of the sequence. An id already
// present in the collection fails with ErrDuplicateID.
func (c *Collection) Insert(e types.Entity) error {
	if c.IndexOf(e.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
	}
	c.entities = append(c.entities, e)
	return nil
}

// RemoveByID removes and returns the entity with the given id. A missing
// id fails with ErrNotFound; callers treat that as a normal negative
// outcome, not a fault.
func (c *Collection) RemoveByID(id string) (types.Entity, error) {
	i := c.IndexOf(id)
	if i < 0 {
		return types.Entity{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return c.removeAt(i), nil
}

// RemoveAt removes and returns the entity at the given position.
func (c *Collection) RemoveAt(index int) (types.Entity, error) {
	if index < 0 || index >= len(c.entities) {
		return types.Entity{}, fmt.Errorf("%w: index %d, length %d", ErrNotFound, index, len(c.entities))
	}
	return c.removeAt(index), nil
}

func (c *Collection) removeAt(index int) types.Entity {
	removed := c.entities[index]
	c.entities = append(c.entities[:index], c.entities[index+1:]...)
	return removed
}

// Reset replaces the entire sequence with the given seed entities.
func (c *Collection) Reset(seed []types.Entity) {
	c.entities = make([]types.Entity, len(seed))
	copy(c.entities, seed)
}
