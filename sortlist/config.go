package sortlist

import (
	"fmt"
	"log/slog"

	"github.com/arthur-debert/sortlist/types"
)

// DefaultHistoryCapacity bounds the action log when no capacity is
// configured. Consumers only ever observe this many recent entries.
const DefaultHistoryCapacity = 10

// Config describes one list instance. There is no ambient configuration:
// everything a list needs arrives here at construction time.
type Config struct {
	// Mode selects how reorder and delete requests address entities.
	Mode types.ReferenceMode

	// HistoryCapacity bounds the action log; 0 means DefaultHistoryCapacity.
	HistoryCapacity int

	// IDStrategy names the identity generation strategy (counter, random,
	// timestamp, uuid). Empty means uuid.
	IDStrategy string

	// IDLength is the token length for the random strategy; 0 means
	// DefaultRandomIDLength.
	IDLength int

	// Seed holds the initial display values. Reset regenerates the
	// collection from this list with fresh ids.
	Seed []string

	// Logger receives structured records for accepted and rejected
	// requests. Nil means slog.Default().
	Logger *slog.Logger
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("history capacity cannot be negative: %d", c.HistoryCapacity)
	}
	if c.IDLength < 0 {
		return fmt.Errorf("id length cannot be negative: %d", c.IDLength)
	}
	if c.IDStrategy != "" {
		switch c.IDStrategy {
		case StrategyCounter, StrategyRandom, StrategyTimestamp, StrategyUUID:
		default:
			return fmt.Errorf("unknown id strategy %q", c.IDStrategy)
		}
	}
	switch c.Mode {
	case types.ByID, types.ByIndex:
	default:
		return fmt.Errorf("invalid reference mode %d", c.Mode)
	}
	return nil
}

func (c *Config) historyCapacity() int {
	if c.HistoryCapacity == 0 {
		return DefaultHistoryCapacity
	}
	return c.HistoryCapacity
}

func (c *Config) idStrategy() string {
	if c.IDStrategy == "" {
		return StrategyUUID
	}
	return c.IDStrategy
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
