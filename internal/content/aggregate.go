package content

import (
	"fmt"
	"log/slog"

	"github.com/rcliao/event-repeater/internal/model"
)

// Aggregate merges the documents of every pack that depends on modID.
// Packs without the dependency or without a readable document are skipped.
func Aggregate(reg Registry, modID string, log *slog.Logger) (*model.Forgettables, error) {
	log = log.With("component", "content")

	packs, err := reg.Packs()
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}

	b := model.NewForgettablesBuilder()
	for _, p := range packs {
		if !p.DependsOn(modID) {
			continue
		}

		doc, err := p.ReadDocument()
		if err != nil {
			log.Debug("skipping pack", "pack", p.Manifest.UniqueID, "error", err)
			continue
		}

		if n := len(doc.RepeatEvents); n > 0 {
			log.Info(fmt.Sprintf("loading %d forgettable events", n), "pack", p.Manifest.UniqueID)
		}
		if n := len(doc.RepeatMail); n > 0 {
			log.Info(fmt.Sprintf("loading %d forgettable mail", n), "pack", p.Manifest.UniqueID)
		}
		if n := len(doc.RepeatResponse); n > 0 {
			log.Info(fmt.Sprintf("loading %d forgettable responses", n), "pack", p.Manifest.UniqueID)
		}
		b.Add(*doc)
	}

	f := b.Build()
	log.Info("loaded forget-lists",
		"events", f.EventCount(),
		"mail", f.MailCount(),
		"responses", f.ResponseCount())
	return f, nil
}
