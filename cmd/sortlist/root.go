package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	mode      string
	capacity  int
	strategy  string
	seedFile  string
	logLevel  string
	logStdout bool
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "sortlist",
	Short: "Sortlist demo - identity-preserving reorderable list",
	Long: `Sortlist is an interactive demo of an identity-preserving reorder engine.

Items carry a stable id independent of their position, so moves and deletes
addressed by id stay correct across any earlier mutation. Run with
--mode by-index to experience the classic stale-index failure instead.

Examples:
  # Correct mode (default)
  sortlist

  # The anti-pattern, for contrast
  sortlist --mode by-index

  # Replay a scripted session without the TUI
  sortlist script session.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(&flags)
		if err != nil {
			return err
		}
		logger, err := initLogging(cfg.LogLevel, false)
		if err != nil {
			return err
		}
		list, err := cfg.newList(logger)
		if err != nil {
			return err
		}

		p := tea.NewProgram(newModel(list), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("demo exited with an error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "", "Reference mode: by-id|by-index")
	rootCmd.PersistentFlags().IntVarP(&flags.capacity, "capacity", "c", 0, "History log capacity")
	rootCmd.PersistentFlags().StringVarP(&flags.strategy, "strategy", "s", "", "Id strategy: counter|random|timestamp|uuid")
	rootCmd.PersistentFlags().StringVar(&flags.seedFile, "seed-file", "", "YAML file with the initial items")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVar(&flags.logStdout, "log-stdout", false, "Also log to stdout (script command only)")

	rootCmd.AddCommand(scriptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
