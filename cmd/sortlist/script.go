package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sortlist/formats"
	"github.com/arthur-debert/sortlist/sortlist"
	"github.com/arthur-debert/sortlist/types"
)

var scriptFormat string

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Replay a scripted session and print the outcome",
	Long: `Replay a newline-separated operation script against a fresh list and
print the final sequence plus the recent history. Reads stdin when no file
is given.

Operations (refs are ids in by-id mode, positions in by-index mode):
  move <active> <over>
  delete <ref>
  insert <value...>
  reset

Lines starting with # are comments. Rejected requests do not abort the
script; they show up as warnings in the history, which is the point of
replaying stale-reference scenarios.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formats.Get(scriptFormat)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(&flags)
		if err != nil {
			return err
		}
		logger, err := initLogging(cfg.LogLevel, cfg.LogStdout)
		if err != nil {
			return err
		}
		list, err := cfg.newList(logger)
		if err != nil {
			return err
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		return runScript(list, in, cmd.OutOrStdout(), format)
	},
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptFormat, "format", "f", "text", "Output format: text|markdown")
}

// runScript executes one operation per line and writes the final snapshot
// in the given format. Recoverable rejections keep the script going;
// malformed lines and contract violations abort it.
func runScript(list *sortlist.List, in io.Reader, out io.Writer, format *formats.SnapshotFormat) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runScriptLine(list, line); err != nil {
			if sortlist.IsRecoverable(err) {
				continue
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	_, err := io.WriteString(out, format.Render(formats.Snapshot{
		Mode:     list.Mode(),
		Entities: list.Entities(),
		History:  list.RecentHistory(historyWindow),
	}))
	return err
}

func runScriptLine(list *sortlist.List, line string) error {
	fields := strings.Fields(line)
	op, args := fields[0], fields[1:]

	switch op {
	case "move":
		if len(args) != 2 {
			return fmt.Errorf("move wants 2 refs, got %d", len(args))
		}
		active, err := parseRef(args[0], list.Mode())
		if err != nil {
			return err
		}
		over, err := parseRef(args[1], list.Mode())
		if err != nil {
			return err
		}
		_, err = list.SubmitReorder(types.ReorderRequest{Active: active, Over: over})
		return err

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete wants 1 ref, got %d", len(args))
		}
		ref, err := parseRef(args[0], list.Mode())
		if err != nil {
			return err
		}
		return list.SubmitDelete(ref)

	case "insert":
		if len(args) == 0 {
			return fmt.Errorf("insert wants a value")
		}
		_, err := list.SubmitInsert(strings.Join(args, " "))
		return err

	case "reset":
		list.ResetCollection()
		return nil

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

func parseRef(s string, mode types.ReferenceMode) (types.Ref, error) {
	if mode == types.ByIndex {
		index, err := strconv.Atoi(s)
		if err != nil {
			return types.Ref{}, fmt.Errorf("by-index mode wants positions, got %q", s)
		}
		return types.IndexRef(index), nil
	}
	return types.IDRef(s), nil
}
