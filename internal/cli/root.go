// Package cli implements the event-repeater CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	modsDir  string
	workDir  string
	logLevel string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "event-repeater",
	Short: "Make seen events, mail and dialogue responses repeatable",
	Long: "Forgets configured events, mail and dialogue responses at the start of each day so content can play again.\n" +
		"Forget-lists come from content packs that depend on the repeater; operator commands edit the save directly.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Save database path (default: $EVENT_REPEATER_DB or ~/.event-repeater/save.db)")
	RootCmd.PersistentFlags().StringVarP(&modsDir, "mods", "m", "", "Mods directory holding content packs (default: $EVENT_REPEATER_MODS or ~/.event-repeater/Mods)")
	RootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "w", "", "Directory holding ManualRepeaterFiles (default: current directory)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
