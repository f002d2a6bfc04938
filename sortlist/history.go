package sortlist

import (
	"time"

	"github.com/arthur-debert/sortlist/types"
)

// History is the bounded action log. Entries are appended in receipt order
// and the oldest entry is evicted once the configured capacity is exceeded,
// so the log never grows unbounded.
type History struct {
	entries  []types.HistoryEntry
	capacity int
	timeFunc func() time.Time
}

// NewHistory creates a log bounded to the given capacity. Capacities below
// 1 fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		capacity: capacity,
		timeFunc: time.Now,
	}
}

// Capacity returns the configured bound.
func (h *History) Capacity() int {
	return h.capacity
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// SetTimeFunc sets a custom time function for deterministic timestamps.
func (h *History) SetTimeFunc(fn func() time.Time) {
	h.timeFunc = fn
}

// Record appends an entry stamped with the current time, evicting the
// oldest entry when the log is full.
func (h *History) Record(kind types.ActionKind, message string, warning bool) {
	h.entries = append(h.entries, types.HistoryEntry{
		Kind:    kind,
		Message: message,
		Time:    h.timeFunc(),
		Warning: warning,
	})
	if len(h.entries) > h.capacity {
		h.entries = h.entries[len(h.entries)-h.capacity:]
	}
}

// Recent returns up to n entries, most recent first. It never returns more
// than the log holds and does not mutate the log.
func (h *History) Recent(n int) []types.HistoryEntry {
	if n < 0 {
		n = 0
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]types.HistoryEntry, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Clear empties the log.
func (h *History) Clear() {
	h.entries = nil
}
