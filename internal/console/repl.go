package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader yields one input line per call. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Console reads command lines and dispatches them until exit or EOF.
type Console struct {
	Registry *Registry
	In       LineReader
	Out      io.Writer
	Log      *slog.Logger
	// AfterEach runs after every dispatched command, whether it failed or not.
	AfterEach func() error
}

// NewReadline returns a readline prompt that completes registered command
// names.
func NewReadline(reg *Registry, prompt, historyFile string) (*readline.Instance, error) {
	var items []readline.PrefixCompleterInterface
	for _, c := range reg.Commands() {
		items = append(items, readline.PcItem(c.Name))
	}
	items = append(items, readline.PcItem("help"), readline.PcItem("exit"))

	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		HistoryLimit:    200,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Serve runs the read-dispatch loop. Command errors are logged and do not
// stop the loop.
func (c *Console) Serve() error {
	log := c.Log.With("component", "console")
	for {
		line, err := c.In.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			c.help()
			continue
		}

		if err := c.Registry.Dispatch(input); err != nil {
			log.Error("command failed", "input", input, "error", err)
		}
		if c.AfterEach != nil {
			if err := c.AfterEach(); err != nil {
				return err
			}
		}
	}
}

func (c *Console) help() {
	for _, cmd := range c.Registry.Commands() {
		fmt.Fprintf(c.Out, "  %-16s %s\n", cmd.Name, cmd.Usage)
	}
	fmt.Fprintf(c.Out, "  %-16s %s\n", "exit", "leave the console")
}
