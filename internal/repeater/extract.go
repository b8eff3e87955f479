package repeater

import (
	"strconv"
	"strings"
)

// Embedded event commands handled by the repeater instead of the host.
const (
	cmdForgetEvent    = "forgetEvent"
	cmdForgetMail     = "forgetMail"
	cmdForgetResponse = "forgetResponse"
)

var embeddedCommands = []string{cmdForgetEvent, cmdForgetMail, cmdForgetResponse}

// ExtractCommands splits commands into those whose first token is one of
// names and the rest. Both results keep the input order.
func ExtractCommands(commands, names []string) (remaining, extracted []string) {
	remaining = make([]string, 0, len(commands))
	for _, c := range commands {
		if matchesName(c, names) {
			extracted = append(extracted, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	return remaining, extracted
}

func matchesName(command string, names []string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	for _, n := range names {
		if fields[0] == n {
			return true
		}
	}
	return false
}

// CheckEvent polls the host's current event. The first time a new event is
// seen, its embedded forget commands are removed from the script and applied.
// It reports whether that happened on this call.
func (r *Repeater) CheckEvent() bool {
	ev := r.game.CurrentEvent
	if !r.watcher.Observe(ev) {
		return false
	}

	remaining, extracted := ExtractCommands(ev.Commands, embeddedCommands)
	ev.Commands = remaining
	for _, c := range extracted {
		r.applyEmbedded(c)
	}
	if len(extracted) > 0 {
		r.log.Debug("applied embedded commands", "event", ev.ID, "count", len(extracted))
	}
	return true
}

func (r *Repeater) applyEmbedded(command string) {
	parts := strings.Split(command, " ")
	name := parts[0]
	if len(parts) != 2 {
		r.log.Warn("command requires one argument", "command", name, "script", command)
		return
	}
	raw := parts[1]
	p := r.game.Player

	switch name {
	case cmdForgetEvent:
		id, err := strconv.Atoi(raw)
		if err != nil {
			r.log.Warn("could not parse event ID", "command", name, "id", raw)
			return
		}
		p.EventsSeen.Remove(id)
	case cmdForgetMail:
		p.MailReceived.Remove(raw)
	case cmdForgetResponse:
		id, err := strconv.Atoi(raw)
		if err != nil {
			r.log.Warn("could not parse response ID", "command", name, "id", raw)
			return
		}
		p.ResponsesAnswered.Remove(id)
	default:
		r.log.Warn("unrecognized command name", "command", name)
	}
}
