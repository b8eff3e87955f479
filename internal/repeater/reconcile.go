package repeater

import "github.com/rcliao/event-repeater/internal/host"

// ReconcileResult lists what a reconciliation pass removed, per category, in
// removal order (last index first).
type ReconcileResult struct {
	Events    []int    `json:"events"`
	Mail      []string `json:"mail"`
	Responses []int    `json:"responses"`
}

// Removed returns the total number of removed entries.
func (res ReconcileResult) Removed() int {
	return len(res.Events) + len(res.Mail) + len(res.Responses)
}

// Reconcile removes every forgettable entry from the player's collections.
// Categories run in the order events, mail, responses.
func (r *Repeater) Reconcile() ReconcileResult {
	p := r.game.Player
	var res ReconcileResult

	manual := make(map[int]struct{}, len(r.manual))
	for _, id := range r.manual {
		manual[id] = struct{}{}
	}
	res.Events = removeMatching(p.EventsSeen, func(id int) bool {
		if r.forget.HasEvent(id) {
			r.log.Debug("repeatable event found, resetting", "event", id)
			return true
		}
		if _, ok := manual[id]; ok {
			r.log.Debug("manual repeater engaged, resetting", "event", id)
			return true
		}
		return false
	})
	if len(res.Events) == 0 {
		r.log.Debug("no repeatable events were removed")
	}

	res.Mail = removeMatching(p.MailReceived, func(key string) bool {
		if r.forget.HasMail(key) {
			r.log.Debug("repeatable mail found, resetting", "mail", key)
			return true
		}
		return false
	})
	if len(res.Mail) == 0 {
		r.log.Debug("no repeatable mail found for removal")
	}

	res.Responses = removeMatching(p.ResponsesAnswered, func(id int) bool {
		if r.forget.HasResponse(id) {
			r.log.Debug("repeatable response found, resetting", "response", id)
			return true
		}
		return false
	})
	if len(res.Responses) == 0 {
		r.log.Debug("no repeatable responses found")
	}

	return res
}

// removeMatching walks c from the end so removal by index never skips an
// entry.
func removeMatching[T comparable](c *host.Collection[T], match func(T) bool) []T {
	var removed []T
	for i := c.Len() - 1; i >= 0; i-- {
		v := c.At(i)
		if match(v) {
			c.RemoveAt(i)
			removed = append(removed, v)
		}
	}
	return removed
}
