package repeater

import (
	"fmt"
	"strconv"

	"github.com/rcliao/event-repeater/internal/console"
)

// Command describes an operator command backed by a Repeater method.
type Command struct {
	Name string
	Args string
	Help string
	Run  func(r *Repeater, args []string) error
}

// Usage returns the argument synopsis followed by the help text.
func (c Command) Usage() string {
	if c.Args == "" {
		return c.Help
	}
	return c.Args + "  " + c.Help
}

// Commands is the operator command surface.
var Commands = []Command{
	{"forget-event", "<id>", "forget a seen event", (*Repeater).forgetEventCommand},
	{"show-events", "", "list all seen events", (*Repeater).showEventsCommand},
	{"show-mail", "", "list all received mail", (*Repeater).showMailCommand},
	{"forget-mail", "<key>", "forget a received letter", (*Repeater).forgetMailCommand},
	{"send-mail", "<key>", "deliver a letter tomorrow", (*Repeater).sendMailCommand},
	{"show-responses", "", "list answered dialogue response IDs", (*Repeater).showResponsesCommand},
	{"forget-response", "<id>", "forget an answered response", (*Repeater).forgetResponseCommand},
	{"repeater-add", "[ids...]", "repeat events every day; with no id the last seen event is used", (*Repeater).repeaterAddCommand},
	{"repeater-save", "<name>", "save the manual repeater list to a file", (*Repeater).repeaterSaveCommand},
	{"repeater-load", "<name>", "load a saved manual repeater list", (*Repeater).repeaterLoadCommand},
	{"inject", "<event|mail|response> <id>", "mark an ID as already seen", (*Repeater).injectCommand},
}

// Register binds every operator command to r.
func (r *Repeater) Register(reg *console.Registry) error {
	for _, c := range Commands {
		run := c.Run
		if err := reg.Add(c.Name, c.Usage(), func(args []string) error {
			return run(r, args)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repeater) forgetEventCommand(args []string) error {
	if len(args) == 0 {
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil
	}
	r.game.Player.EventsSeen.Remove(id)
	r.log.Info(fmt.Sprintf("forgetting event id: %d", id))
	return nil
}

func (r *Repeater) forgetMailCommand(args []string) error {
	if len(args) == 0 {
		return nil
	}
	r.game.Player.MailReceived.Remove(args[0])
	r.log.Info("forgetting mail id: " + args[0])
	return nil
}

func (r *Repeater) forgetResponseCommand(args []string) error {
	if len(args) == 0 {
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil
	}
	r.game.Player.ResponsesAnswered.Remove(id)
	r.log.Info(fmt.Sprintf("forgetting response id: %d", id))
	return nil
}

func (r *Repeater) showEventsCommand([]string) error {
	r.log.Info("events seen: " + r.game.Player.EventsSeen.String())
	return nil
}

func (r *Repeater) showMailCommand([]string) error {
	r.log.Info("mail seen: " + r.game.Player.MailReceived.String())
	return nil
}

func (r *Repeater) showResponsesCommand([]string) error {
	r.log.Info("response IDs: " + r.game.Player.ResponsesAnswered.String())
	return nil
}

func (r *Repeater) sendMailCommand(args []string) error {
	if len(args) == 0 {
		return nil
	}
	r.game.AddMailForTomorrow(args[0])
	r.log.Info("check mail tomorrow, sending: " + args[0])
	return nil
}

func (r *Repeater) repeaterAddCommand(args []string) error {
	r.AddManual(args)
	return nil
}

func (r *Repeater) repeaterSaveCommand(args []string) error {
	if len(args) == 0 {
		r.log.Warn("usage: repeater-save <name>")
		return nil
	}
	_, err := r.SaveManual(args[0])
	return err
}

func (r *Repeater) repeaterLoadCommand(args []string) error {
	if len(args) == 0 {
		r.log.Warn("usage: repeater-load <name>")
		return nil
	}
	return r.LoadManual(args[0])
}

// injectCommand marks an ID as already seen. Non-numeric event and response
// IDs are returned as errors.
func (r *Repeater) injectCommand(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		switch args[0] {
		case "event", "mail", "response":
			r.log.Error(fmt.Sprintf("no %s ID entered, please input a %s ID", args[0], args[0]))
		default:
			r.log.Warn("unknown inject category", "category", args[0])
		}
		return nil
	case 2:
	default:
		r.log.Warn("usage: inject <event|mail|response> <id>")
		return nil
	}

	category, raw := args[0], args[1]
	p := r.game.Player
	switch category {
	case "event":
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("inject event: invalid ID %q: %w", raw, err)
		}
		injectInto(r, p.EventsSeen.Contains, p.EventsSeen.Append, id, "seen events")
	case "response":
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("inject response: invalid ID %q: %w", raw, err)
		}
		injectInto(r, p.ResponsesAnswered.Contains, p.ResponsesAnswered.Append, id, "response list")
	case "mail":
		injectInto(r, p.MailReceived.Contains, p.MailReceived.Append, raw, "received mail")
	default:
		r.log.Warn("unknown inject category", "category", category)
	}
	return nil
}

func injectInto[T comparable](r *Repeater, contains func(T) bool, add func(T), v T, list string) {
	if contains(v) {
		r.log.Warn(fmt.Sprintf("%v already exists within %s", v, list))
		return
	}
	add(v)
	r.log.Info(fmt.Sprintf("%v has been added to %s", v, list))
}
