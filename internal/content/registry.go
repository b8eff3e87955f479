// Package content discovers installed content packs and merges the
// forget-lists they declare.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/event-repeater/internal/model"
)

const manifestFile = "manifest.json"

// documentFiles are tried in order; the first one present wins.
var documentFiles = []string{"content.json", "content.yaml", "content.yml"}

// ErrNoDocument is returned when a pack has no forget-list document.
var ErrNoDocument = errors.New("no content document")

// Pack is an installed content pack and the directory it lives in.
type Pack struct {
	Manifest model.Manifest
	Dir      string
}

// DependsOn reports whether the manifest declares a dependency on id,
// ignoring case and surrounding whitespace.
func (p Pack) DependsOn(id string) bool {
	id = strings.TrimSpace(id)
	for _, dep := range p.Manifest.Dependencies {
		if strings.EqualFold(strings.TrimSpace(dep.UniqueID), id) {
			return true
		}
	}
	return false
}

// ReadDocument loads the pack's forget-list document.
func (p Pack) ReadDocument() (*model.Document, error) {
	for _, name := range documentFiles {
		data, err := os.ReadFile(filepath.Join(p.Dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var doc model.Document
		if strings.HasSuffix(name, ".json") {
			err = decodeJSON(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return &doc, nil
	}
	return nil, ErrNoDocument
}

// Registry enumerates installed packs.
type Registry interface {
	Packs() ([]Pack, error)
}

// DirRegistry finds packs under a mods directory. A directory holding a
// manifest.json is a pack; any other directory is searched recursively.
type DirRegistry struct {
	Root string
	Log  *slog.Logger
}

// NewDirRegistry returns a registry rooted at dir.
func NewDirRegistry(dir string, log *slog.Logger) *DirRegistry {
	return &DirRegistry{Root: dir, Log: log.With("component", "content")}
}

func (r *DirRegistry) Packs() ([]Pack, error) {
	if _, err := os.Stat(r.Root); errors.Is(err, os.ErrNotExist) {
		r.Log.Debug("mods directory not found", "dir", r.Root)
		return nil, nil
	}

	var packs []Pack
	if err := r.scan(r.Root, &packs); err != nil {
		return nil, err
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Dir < packs[j].Dir })
	return packs, nil
}

func (r *DirRegistry) scan(dir string, packs *[]Pack) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read mods dir: %w", err)
	}

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		sub := filepath.Join(dir, e.Name())

		data, err := os.ReadFile(filepath.Join(sub, manifestFile))
		if errors.Is(err, os.ErrNotExist) {
			if err := r.scan(sub, packs); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			r.Log.Warn("skipping pack: unreadable manifest", "dir", sub, "error", err)
			continue
		}

		var m model.Manifest
		if err := decodeJSON(data, &m); err != nil {
			r.Log.Warn("skipping pack: invalid manifest", "dir", sub, "error", err)
			continue
		}
		*packs = append(*packs, Pack{Manifest: m, Dir: sub})
	}
	return nil
}

var utf8BOM = []byte("\ufeff")

// decodeJSON reads pack JSON the way hand-edited packs are written: an
// optional byte order mark, comments and trailing commas are accepted.
func decodeJSON(data []byte, v any) error {
	std, err := hujson.Standardize(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return err
	}
	return json.Unmarshal(std, v)
}
