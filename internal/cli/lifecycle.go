package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	dayCmd := &cobra.Command{
		Use:   "day-start",
		Short: "Start the next day and forget every repeatable entry",
		Run:   runDayStart,
	}

	tickCmd := &cobra.Command{
		Use:   "tick",
		Short: "Poll the running event once, applying its embedded forget commands if it just started",
		Run:   runTick,
	}

	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Scripted event control",
	}
	eventCmd.AddCommand(&cobra.Command{
		Use:   "start <script>",
		Short: "Start an event from a slash-separated script",
		Long:  `Start an event from a slash-separated script, e.g. "speak Lewis \"Hi\"/forgetEvent 10/end".`,
		Args:  cobra.MinimumNArgs(1),
		Run:   runEventStart,
	})
	eventCmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "End the running event",
		Run:   runEventEnd,
	})
	eventCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the running event",
		Run:   runEventShow,
	})

	RootCmd.AddCommand(dayCmd, tickCmd, eventCmd)
}

func runDayStart(cmd *cobra.Command, args []string) {
	withSession(cmd.Context(), func(s *session) error {
		res := s.startDay()
		out := struct {
			Day     int `json:"day"`
			Removed any `json:"removed"`
		}{s.game.Day, res}
		b, _ := json.Marshal(out)
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	})
}

func runTick(cmd *cobra.Command, args []string) {
	withSession(cmd.Context(), func(s *session) error {
		started := s.tick()
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"event_started":%t}`+"\n", started)
		return nil
	})
}

func runEventStart(cmd *cobra.Command, args []string) {
	withSession(cmd.Context(), func(s *session) error {
		ev, err := s.startEvent(args)
		if err != nil {
			return err
		}
		b, _ := json.Marshal(ev)
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	})
}

func runEventEnd(cmd *cobra.Command, args []string) {
	withSession(cmd.Context(), func(s *session) error {
		s.endEvent()
		fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
		return nil
	})
}

func runEventShow(cmd *cobra.Command, args []string) {
	withSession(cmd.Context(), func(s *session) error {
		b, _ := json.MarshalIndent(s.game.CurrentEvent, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	})
}
