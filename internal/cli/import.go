package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/event-repeater/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the save with JSON from stdin",
		Long:  "Replace the save with JSON read from stdin. Expects the format produced by export.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		exitErr("parse json", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Import(cmd.Context(), &snap); err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"events_seen":%d,"mail_received":%d,"responses_answered":%d}`+"\n",
		len(snap.EventsSeen), len(snap.MailReceived), len(snap.ResponsesAnswered))
}
