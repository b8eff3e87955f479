package repeater

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcliao/event-repeater/internal/content"
	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/model"
)

type fixture struct {
	r    *Repeater
	game *host.Game
	logs *bytes.Buffer
	dir  string
}

func newFixture(t *testing.T, doc model.Document) *fixture {
	t.Helper()
	b := model.NewForgettablesBuilder()
	b.Add(doc)

	var logs bytes.Buffer
	g := host.NewGame()
	dir := filepath.Join(t.TempDir(), "ManualRepeaterFiles")
	r, err := New(g, Options{
		ManualDir:    dir,
		Forgettables: b.Build(),
		Logger:       slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)
	return &fixture{r: r, game: g, logs: &logs, dir: dir}
}

func (f *fixture) seen(ids ...int) {
	for _, id := range ids {
		f.game.Player.EventsSeen.Append(id)
	}
}

type staticRegistry struct {
	packs []content.Pack
}

func (s staticRegistry) Packs() ([]content.Pack, error) { return s.packs, nil }
