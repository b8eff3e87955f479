package host

import (
	"math"
	"sort"
)

// Priority orders handlers for the same lifecycle event. Higher runs first.
type Priority int

const (
	PriorityLow    Priority = -1000
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 1000

	// PriorityLast runs after every handler registered at a named priority.
	PriorityLast Priority = math.MinInt32
)

// Handler receives the game on a lifecycle event.
type Handler func(g *Game)

type registration struct {
	priority Priority
	seq      int
	fn       Handler
}

// Lifecycle dispatches host callbacks. It is driven from a single goroutine.
type Lifecycle struct {
	game       *Game
	seq        int
	launched   []registration
	dayStarted []registration
	ticked     []registration
}

// NewLifecycle binds a dispatcher to a game.
func NewLifecycle(g *Game) *Lifecycle {
	return &Lifecycle{game: g}
}

// OnLaunched registers a handler for startup completion.
func (l *Lifecycle) OnLaunched(p Priority, fn Handler) {
	l.launched = l.add(l.launched, p, fn)
}

// OnDayStarted registers a handler for the start of each day.
func (l *Lifecycle) OnDayStarted(p Priority, fn Handler) {
	l.dayStarted = l.add(l.dayStarted, p, fn)
}

// OnUpdateTicked registers a handler polled on every update tick.
func (l *Lifecycle) OnUpdateTicked(p Priority, fn Handler) {
	l.ticked = l.add(l.ticked, p, fn)
}

func (l *Lifecycle) add(regs []registration, p Priority, fn Handler) []registration {
	l.seq++
	regs = append(regs, registration{priority: p, seq: l.seq, fn: fn})
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].priority != regs[j].priority {
			return regs[i].priority > regs[j].priority
		}
		return regs[i].seq < regs[j].seq
	})
	return regs
}

// Launch fires the launched handlers.
func (l *Lifecycle) Launch() {
	l.dispatch(l.launched)
}

// StartDay advances the game one day and fires the day-started handlers.
func (l *Lifecycle) StartDay() {
	l.game.advanceDay()
	l.dispatch(l.dayStarted)
}

// Tick fires the update-ticked handlers once.
func (l *Lifecycle) Tick() {
	l.dispatch(l.ticked)
}

func (l *Lifecycle) dispatch(regs []registration) {
	for _, r := range regs {
		r.fn(l.game)
	}
}
