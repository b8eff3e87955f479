package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rcliao/event-repeater/internal/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run operator and lifecycle commands interactively",
		Long:  "Open an interactive console. Type help for the command list, exit or Ctrl+D to leave. The save is written after every command.",
		Run:   runConsole,
	}

	RootCmd.AddCommand(cmd)
}

func runConsole(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		exitErr("open session", err)
	}
	defer s.Close()

	rl, err := console.NewReadline(s.registry, "repeater> ", filepath.Join(os.TempDir(), ".event_repeater_history"))
	if err != nil {
		exitErr("init readline", err)
	}
	defer rl.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "event-repeater console, day %d (help for commands)\n", s.game.Day)
	c := &console.Console{
		Registry:  s.registry,
		In:        rl,
		Out:       cmd.OutOrStdout(),
		Log:       s.log,
		AfterEach: func() error { return s.persist(ctx) },
	}
	if err := c.Serve(); err != nil {
		exitErr("console", err)
	}
}
