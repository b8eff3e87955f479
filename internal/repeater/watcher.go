package repeater

import "github.com/rcliao/event-repeater/internal/model"

// EventWatcher detects when the host starts a new scripted event. It keeps
// only the ID of the last observed event: empty means Idle.
type EventWatcher struct {
	last string
}

// Observe records the current event and reports whether it is newly started.
// Polling again while the same event runs returns false.
func (w *EventWatcher) Observe(ev *model.Event) bool {
	if ev == nil {
		w.last = ""
		return false
	}
	if ev.ID == w.last {
		return false
	}
	w.last = ev.ID
	return true
}

// InEvent reports whether an event was running at the last observation.
func (w *EventWatcher) InEvent() bool { return w.last != "" }

func (w *EventWatcher) Last() string { return w.last }

func (w *EventWatcher) Restore(id string) { w.last = id }
