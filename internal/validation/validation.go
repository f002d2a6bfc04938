// Package validation checks incoming requests against the collection's
// configured reference mode before any mutation is attempted. Failures here
// mean the gesture layer handed over a malformed request, which the engine
// surfaces loudly instead of recording as a recoverable outcome.
package validation

import (
	"fmt"

	"github.com/arthur-debert/sortlist/types"
)

// Ref checks a single reference for shape and mode agreement.
func Ref(ref types.Ref, mode types.ReferenceMode) error {
	if ref.IsZero() {
		return fmt.Errorf("reference is empty")
	}
	switch mode {
	case types.ByID:
		if ref.ByIndex() {
			return fmt.Errorf("index reference %d in a by-id collection", ref.Index)
		}
		if ref.ID == "" {
			return fmt.Errorf("id reference without an id")
		}
	case types.ByIndex:
		if !ref.ByIndex() {
			return fmt.Errorf("id reference %q in a by-index collection", ref.ID)
		}
		if ref.Index < 0 {
			return fmt.Errorf("negative index reference %d", ref.Index)
		}
	default:
		return fmt.Errorf("invalid reference mode %d", mode)
	}
	return nil
}

// ReorderRequest checks both references of a reorder request.
func ReorderRequest(req types.ReorderRequest, mode types.ReferenceMode) error {
	if err := Ref(req.Active, mode); err != nil {
		return fmt.Errorf("active: %w", err)
	}
	if err := Ref(req.Over, mode); err != nil {
		return fmt.Errorf("over: %w", err)
	}
	return nil
}
