package store

import (
	"context"
	"fmt"

	"github.com/rcliao/event-repeater/internal/host"
)

// Export returns the whole save as a snapshot.
func (s *SQLiteStore) Export(ctx context.Context) (*Snapshot, error) {
	g, err := s.LoadGame(ctx)
	if err != nil {
		return nil, err
	}
	manual, err := s.ManualRepeaters(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Day:               g.Day,
		EventsSeen:        g.Player.EventsSeen.Values(),
		MailReceived:      g.Player.MailReceived.Values(),
		ResponsesAnswered: g.Player.ResponsesAnswered.Values(),
		MailForTomorrow:   g.MailForTomorrow,
		Mailbox:           g.Mailbox,
		CurrentEvent:      g.CurrentEvent,
		ManualRepeaters:   manual,
	}, nil
}

// Import replaces the save with a snapshot in one transaction. The event
// watcher is reset so a running event in the snapshot is treated as newly
// started.
func (s *SQLiteStore) Import(ctx context.Context, snap *Snapshot) error {
	g := host.NewGame()
	g.Day = snap.Day
	g.Player.EventsSeen = host.NewCollection(snap.EventsSeen...)
	g.Player.MailReceived = host.NewCollection(snap.MailReceived...)
	g.Player.ResponsesAnswered = host.NewCollection(snap.ResponsesAnswered...)
	g.MailForTomorrow = snap.MailForTomorrow
	g.Mailbox = snap.Mailbox
	if snap.CurrentEvent != nil {
		ev := *snap.CurrentEvent
		if ev.ID == "" {
			ev.ID = s.newID()
		}
		g.CurrentEvent = &ev
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := writeGame(ctx, tx, g); err != nil {
		return err
	}
	if err := replaceList(ctx, tx, tblManualRepeaters, snap.ManualRepeaters); err != nil {
		return err
	}
	if err := writeLastEvent(ctx, tx, ""); err != nil {
		return fmt.Errorf("reset event watcher: %w", err)
	}
	return tx.Commit()
}
