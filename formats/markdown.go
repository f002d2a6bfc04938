package formats

import (
	"fmt"
	"strings"
)

func init() {
	if err := Register(&SnapshotFormat{
		Name:   "markdown",
		Render: renderMarkdown,
	}); err != nil {
		panic(err)
	}
}

func renderMarkdown(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Items (%s)\n\n", s.Mode)
	if len(s.Entities) == 0 {
		b.WriteString("_empty_\n")
	} else {
		b.WriteString("| # | Value | Id |\n")
		b.WriteString("|---|-------|----|\n")
		for i, e := range s.Entities {
			fmt.Fprintf(&b, "| %d | %s | `%s` |\n", i, escapePipes(e.Value), e.ID)
		}
	}

	b.WriteString("\n## History\n\n")
	if len(s.History) == 0 {
		b.WriteString("_empty_\n")
	}
	for _, entry := range s.History {
		marker := "-"
		if entry.Warning {
			marker = "- ⚠"
		}
		fmt.Fprintf(&b, "%s **%s** %s\n", marker, entry.Kind, escapePipes(entry.Message))
	}

	return b.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
