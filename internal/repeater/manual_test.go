package repeater

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/event-repeater/internal/model"
)

func TestAddManualNoArgsTakesLastSeen(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.seen(1, 2, 3)

	f.r.AddManual(nil)
	assert.Equal(t, []int{1, 2}, f.game.Player.EventsSeen.Values())
	assert.Equal(t, []int{3}, f.r.Manual())
}

func TestAddManualNoArgsEmptySeen(t *testing.T) {
	f := newFixture(t, model.Document{})

	f.r.AddManual(nil)
	assert.Empty(t, f.r.Manual())
	assert.Contains(t, f.logs.String(), "no seen events to repeat")
}

func TestAddManualWithArgsPartialSuccess(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.seen(4, 5)

	f.r.AddManual([]string{"5", "oops", "99"})
	assert.Equal(t, []int{5, 99}, f.r.Manual())
	assert.Equal(t, []int{4}, f.game.Player.EventsSeen.Values())
	assert.Contains(t, f.logs.String(), "oops was not a valid event")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.r.RestoreManual([]int{7, 9, 12})

	path, err := f.r.SaveManual("test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "test.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n9\n12\n", string(data))

	g := newFixture(t, model.Document{})
	g.r.manualDir = f.dir
	g.r.RestoreManual([]int{1})
	g.seen(9, 50)

	require.NoError(t, g.r.LoadManual("test"))
	assert.Equal(t, []int{1, 7, 9, 12}, g.r.Manual())
	assert.Equal(t, []int{50}, g.game.Player.EventsSeen.Values())
}

func TestSaveOverwrites(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.r.RestoreManual([]int{1, 2, 3})
	_, err := f.r.SaveManual("x")
	require.NoError(t, err)

	f.r.RestoreManual([]int{4})
	path, err := f.r.SaveManual("x")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", string(data))
}

func TestLoadMalformedLineFails(t *testing.T) {
	f := newFixture(t, model.Document{})
	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "bad.txt"), []byte("1\nabc\n3\n"), 0o644))
	f.seen(1)

	err := f.r.LoadManual("bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Empty(t, f.r.Manual())
	assert.Equal(t, []int{1}, f.game.Player.EventsSeen.Values())
}

func TestLoadMissingDirIsNoop(t *testing.T) {
	f := newFixture(t, model.Document{})
	require.NoError(t, f.r.LoadManual("anything"))
	assert.Empty(t, f.r.Manual())
}

func TestLoadMissingFileFails(t *testing.T) {
	f := newFixture(t, model.Document{})
	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	err := f.r.LoadManual("absent")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestManualNameValidation(t *testing.T) {
	f := newFixture(t, model.Document{})
	_, err := f.r.SaveManual("")
	assert.ErrorIs(t, err, ErrNoName)
	_, err = f.r.SaveManual("../escape")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, f.r.LoadManual("a/b"), ErrInvalidName)
}
