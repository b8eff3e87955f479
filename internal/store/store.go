// Package store persists the player save the repeater operates on: the host
// collections, the running event and the repeater's own session state.
package store

import (
	"context"

	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/model"
)

// Snapshot is a portable copy of a save, used by export and import.
type Snapshot struct {
	Day               int          `json:"day"`
	EventsSeen        []int        `json:"events_seen"`
	MailReceived      []string     `json:"mail_received"`
	ResponsesAnswered []int        `json:"responses_answered"`
	MailForTomorrow   []string     `json:"mail_for_tomorrow,omitempty"`
	Mailbox           []string     `json:"mailbox,omitempty"`
	CurrentEvent      *model.Event `json:"current_event,omitempty"`
	ManualRepeaters   []int        `json:"manual_repeaters,omitempty"`
}

// Store defines the save storage interface.
type Store interface {
	// LoadGame reads the saved world. An empty save yields a fresh game.
	LoadGame(ctx context.Context) (*host.Game, error)

	// SaveGame replaces the saved world with g.
	SaveGame(ctx context.Context, g *host.Game) error

	// ManualRepeaters returns the session's manual repeater list.
	ManualRepeaters(ctx context.Context) ([]int, error)
	SetManualRepeaters(ctx context.Context, ids []int) error

	// LastEvent returns the ID of the last event the watcher observed.
	LastEvent(ctx context.Context) (string, error)
	SetLastEvent(ctx context.Context, id string) error

	// NewEvent mints a running event with a fresh ID.
	NewEvent(commands []string) *model.Event

	// Close closes the store.
	Close() error
}
var _ Store = (*SQLiteStore)(nil)
