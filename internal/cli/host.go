package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/event-repeater/internal/model"
	"github.com/rcliao/event-repeater/internal/repeater"
)

// parseScript turns slash-separated event scripts into a command list.
func parseScript(args []string) []string {
	var cmds []string
	for _, a := range args {
		for _, c := range strings.Split(a, "/") {
			if c = strings.TrimSpace(c); c != "" {
				cmds = append(cmds, c)
			}
		}
	}
	return cmds
}

func (s *session) startDay() repeater.ReconcileResult {
	s.lc.StartDay()
	return s.repeater.LastReconcile()
}

// tick polls the lifecycle once and reports whether a new event was picked up.
func (s *session) tick() bool {
	before := s.repeater.LastEvent()
	s.lc.Tick()
	return s.game.CurrentEvent != nil && s.repeater.LastEvent() != before
}

func (s *session) startEvent(args []string) (*model.Event, error) {
	cmds := parseScript(args)
	if len(cmds) == 0 {
		return nil, fmt.Errorf("event script is empty")
	}
	s.game.CurrentEvent = s.store.NewEvent(cmds)
	return s.game.CurrentEvent, nil
}

func (s *session) endEvent() {
	s.game.CurrentEvent = nil
}

// registerHostCommands exposes the lifecycle drivers inside the console.
func (s *session) registerHostCommands() error {
	cmds := []struct {
		name, usage string
		run         func(args []string) error
	}{
		{"day-start", "start the next day", func([]string) error {
			res := s.startDay()
			s.log.Info(fmt.Sprintf("day %d started", s.game.Day), "removed", res.Removed())
			return nil
		}},
		{"tick", "poll the current event once", func([]string) error {
			if s.tick() {
				s.log.Info("event started", "event", s.game.CurrentEvent.ID)
			}
			return nil
		}},
		{"event-start", "<script>  start a slash-separated event script", func(args []string) error {
			ev, err := s.startEvent(args)
			if err != nil {
				return err
			}
			s.log.Info("event running", "event", ev.ID, "commands", len(ev.Commands))
			return nil
		}},
		{"event-end", "end the running event", func([]string) error {
			s.endEvent()
			return nil
		}},
		{"event-show", "print the running event's commands", func([]string) error {
			b, _ := json.Marshal(s.game.CurrentEvent)
			s.log.Info("current event: " + string(b))
			return nil
		}},
	}
	for _, c := range cmds {
		if err := s.registry.Add(c.name, c.usage, c.run); err != nil {
			return err
		}
	}
	return nil
}
