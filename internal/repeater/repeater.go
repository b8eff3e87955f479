// Package repeater forgets configured events, mail and dialogue responses so
// that game content can play again, and implements the operator commands for
// inspecting and editing those collections.
package repeater

import (
	"errors"
	"log/slog"

	"github.com/rcliao/event-repeater/internal/content"
	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/logging"
	"github.com/rcliao/event-repeater/internal/model"
)

// ErrNoGame is returned when the repeater is constructed without host state.
var ErrNoGame = errors.New("repeater: game and player are required")

// Options configures a Repeater.
type Options struct {
	// ManualDir is where repeater-save and repeater-load read and write.
	ManualDir string
	// Forgettables seeds the forget-sets. Attach replaces them on launch.
	Forgettables *model.Forgettables
	Logger       *slog.Logger
}

// Repeater owns the forget-sets, the manual repeater list and the event
// watcher. It is driven from the host's single dispatch goroutine.
type Repeater struct {
	game      *host.Game
	forget    *model.Forgettables
	manual    []int
	watcher   EventWatcher
	lastDay   ReconcileResult
	manualDir string
	baseLog   *slog.Logger
	log       *slog.Logger
}

// New binds a repeater to the host game.
func New(g *host.Game, opts Options) (*Repeater, error) {
	if g == nil || g.Player == nil {
		return nil, ErrNoGame
	}
	forget := opts.Forgettables
	if forget == nil {
		forget = model.EmptyForgettables()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Repeater{
		game:      g,
		forget:    forget,
		manualDir: opts.ManualDir,
		baseLog:   log,
		log:       log.With("component", "repeater"),
	}, nil
}

// Attach registers the repeater's lifecycle handlers. Forget-lists are
// aggregated from reg when the host launches; reconciliation runs after every
// other day-started handler.
func (r *Repeater) Attach(lc *host.Lifecycle, reg content.Registry, modID string) {
	lc.OnLaunched(host.PriorityNormal, func(*host.Game) {
		f, err := content.Aggregate(reg, modID, r.baseLog)
		if err != nil {
			r.log.Error("load forget-lists", "error", err)
			return
		}
		r.forget = f
	})
	lc.OnDayStarted(host.PriorityLast, func(*host.Game) {
		r.lastDay = r.Reconcile()
	})
	lc.OnUpdateTicked(host.PriorityNormal, func(*host.Game) {
		r.CheckEvent()
	})
}

// Forgettables returns the active forget-sets.
func (r *Repeater) Forgettables() *model.Forgettables { return r.forget }

// LastReconcile returns what the most recent day-started pass removed.
func (r *Repeater) LastReconcile() ReconcileResult { return r.lastDay }

// Manual returns a copy of the manual repeater list.
func (r *Repeater) Manual() []int {
	return append([]int(nil), r.manual...)
}

// RestoreManual replaces the manual repeater list, e.g. from saved session
// state.
func (r *Repeater) RestoreManual(ids []int) {
	r.manual = append([]int(nil), ids...)
}

// LastEvent returns the ID of the last observed running event.
func (r *Repeater) LastEvent() string { return r.watcher.Last() }

// RestoreLastEvent seeds the event watcher.
func (r *Repeater) RestoreLastEvent(id string) { r.watcher.Restore(id) }
