// Package console registers named text commands and runs them from an
// interactive prompt.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned when a name has no registered command.
var ErrUnknownCommand = errors.New("unknown command")

// HandlerFunc runs a command with its whitespace-separated arguments.
type HandlerFunc func(args []string) error

// Command is a registered console command.
type Command struct {
	Name  string
	Usage string
	Run   HandlerFunc
}

// Registry maps command names to handlers.
type Registry struct {
	cmds map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Add registers a command. Names are case-insensitive and must be unique.
func (r *Registry) Add(name, usage string, fn HandlerFunc) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || strings.ContainsAny(key, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}
	if _, ok := r.cmds[key]; ok {
		return fmt.Errorf("command %q already registered", key)
	}
	r.cmds[key] = Command{Name: key, Usage: usage, Run: fn}
	return nil
}

// Commands returns the registered commands sorted by name.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.cmds[strings.ToLower(name)]
	return c, ok
}

// Run invokes a command by name.
func (r *Registry) Run(name string, args []string) error {
	c, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if args == nil {
		args = []string{}
	}
	return c.Run(args)
}

// Dispatch parses a command line and runs it. Blank lines are ignored.
func (r *Registry) Dispatch(line string) error {
	fields, err := SplitArgs(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return r.Run(fields[0], fields[1:])
}

// SplitArgs splits a line on whitespace, keeping double-quoted runs together.
func SplitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (ch == ' ' || ch == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(ch)
			started = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}
