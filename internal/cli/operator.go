package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/event-repeater/internal/repeater"
)

const dashArgsNote = "\n\nArguments that start with a dash, such as negative IDs, must follow a -- separator:\n" +
	"  event-repeater forget-event -- -5"

// Each operator command is also a one-shot subcommand.
func init() {
	for _, c := range repeater.Commands {
		name := c.Name
		cmd := &cobra.Command{
			Use:   strings.TrimSpace(name + " " + c.Args),
			Short: c.Help,
			Run: func(cmd *cobra.Command, args []string) {
				withSession(cmd.Context(), func(s *session) error {
					return s.registry.Run(name, args)
				})
			},
		}
		if c.Args != "" {
			cmd.Long = c.Help + dashArgsNote
		}
		RootCmd.AddCommand(cmd)
	}
}
