package formats

import (
	"fmt"
	"strings"
)

func init() {
	// Plaintext is the default format; a registration failure here is a
	// programming error.
	if err := Register(&SnapshotFormat{
		Name:   "text",
		Render: renderPlaintext,
	}); err != nil {
		panic(err)
	}
}

func renderPlaintext(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Items (%s):\n", s.Mode)
	if len(s.Entities) == 0 {
		b.WriteString("  (empty)\n")
	}
	for i, e := range s.Entities {
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i, e.Value, e.ID)
	}

	b.WriteString("History (most recent first):\n")
	if len(s.History) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, entry := range s.History {
		flag := " "
		if entry.Warning {
			flag = "!"
		}
		fmt.Fprintf(&b, "  %s %-6s %s\n", flag, entry.Kind, entry.Message)
	}

	return b.String()
}
