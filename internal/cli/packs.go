package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/event-repeater/internal/content"
	"github.com/rcliao/event-repeater/internal/logging"
)

func init() {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "List installed content packs and what they ask to forget",
		Run:   runPacks,
	}

	RootCmd.AddCommand(cmd)
}

type packInfo struct {
	UniqueID   string `json:"unique_id"`
	Name       string `json:"name"`
	Dir        string `json:"dir"`
	DependsOn  bool   `json:"depends_on_repeater"`
	Events     int    `json:"repeat_events"`
	Mail       int    `json:"repeat_mail"`
	Responses  int    `json:"repeat_responses"`
	DocProblem string `json:"document_problem,omitempty"`
}

func runPacks(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		exitErr("logger", err)
	}

	packs, err := content.NewDirRegistry(cfg.ModsDir, log).Packs()
	if err != nil {
		exitErr("list packs", err)
	}

	out := make([]packInfo, 0, len(packs))
	for _, p := range packs {
		info := packInfo{
			UniqueID:  p.Manifest.UniqueID,
			Name:      p.Manifest.Name,
			Dir:       p.Dir,
			DependsOn: p.DependsOn(cfg.ModID),
		}
		if doc, err := p.ReadDocument(); err != nil {
			info.DocProblem = err.Error()
		} else {
			info.Events = len(doc.RepeatEvents)
			info.Mail = len(doc.RepeatMail)
			info.Responses = len(doc.RepeatResponse)
		}
		out = append(out, info)
	}

	b, _ := json.MarshalIndent(struct {
		ModID string     `json:"mod_id"`
		Packs []packInfo `json:"packs"`
	}{cfg.ModID, out}, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

