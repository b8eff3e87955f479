package repeater

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrNoName      = errors.New("a file name is required")
	ErrInvalidName = errors.New("file name must not contain a path")
)

// AddManual adds events to the manual repeater list and forgets them now.
// With no ids, the most recently seen event is moved to the list.
func (r *Repeater) AddManual(ids []string) {
	seen := r.game.Player.EventsSeen

	if len(ids) == 0 {
		last, ok := seen.Last()
		if !ok {
			r.log.Warn("no seen events to repeat")
			return
		}
		seen.RemoveAt(seen.Len() - 1)
		r.manual = append(r.manual, last)
		r.log.Info(fmt.Sprintf("%d has been added to manual repeater", last))
		return
	}

	for _, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			r.log.Warn(fmt.Sprintf("%s was not a valid event", raw))
			continue
		}
		r.manual = append(r.manual, id)
		seen.Remove(id)
		r.log.Info(fmt.Sprintf("%d has been added to manual repeater", id))
	}
}

func (r *Repeater) manualPath(name string) (string, error) {
	if name == "" {
		return "", ErrNoName
	}
	if name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(r.manualDir, name+".txt"), nil
}

// SaveManual writes the manual list to <dir>/<name>.txt, one ID per line,
// replacing any existing file. It returns the written path.
func (r *Repeater) SaveManual(name string) (string, error) {
	path, err := r.manualPath(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.manualDir, 0o755); err != nil {
		return "", fmt.Errorf("create manual dir: %w", err)
	}

	var buf bytes.Buffer
	for _, id := range r.manual {
		buf.WriteString(strconv.Itoa(id))
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	r.log.Info("saved manual repeater file", "path", path, "count", len(r.manual))
	return path, nil
}

// LoadManual appends the IDs saved under name to the manual list and forgets
// each of them. A missing save directory is not an error. Any line that is not
// an integer fails the load and nothing from the file is applied.
func (r *Repeater) LoadManual(name string) error {
	path, err := r.manualPath(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(r.manualDir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manual file: %w", err)
	}
	defer f.Close()

	var ids []int
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		id, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%s line %d: invalid event ID %q", path, n, line)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for _, id := range ids {
		r.manual = append(r.manual, id)
		r.game.Player.EventsSeen.Remove(id)
	}
	r.log.Info(fmt.Sprintf("%s loaded", name), "count", len(ids))
	return nil
}
