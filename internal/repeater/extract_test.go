package repeater

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/event-repeater/internal/content"
	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/model"
)

func TestExtractCommandsPreservesOrder(t *testing.T) {
	remaining, extracted := ExtractCommands(
		[]string{"talk 5", "forgetEvent 10", "walk 2", "forgetMailbox 1", "forgetMail x", ""},
		embeddedCommands,
	)
	assert.Equal(t, []string{"talk 5", "walk 2", "forgetMailbox 1", ""}, remaining)
	assert.Equal(t, []string{"forgetEvent 10", "forgetMail x"}, extracted)
}

func TestCheckEventAppliesEmbeddedCommands(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.seen(10, 11)
	p := f.game.Player
	p.MailReceived.Append("robin")
	p.ResponsesAnswered.Append(77)

	f.game.CurrentEvent = &model.Event{ID: "ev1", Commands: []string{
		"talk 5", "forgetEvent 10", "walk 2", "forgetMail robin", "forgetResponse 77",
	}}

	assert.True(t, f.r.CheckEvent())
	assert.Equal(t, []string{"talk 5", "walk 2"}, f.game.CurrentEvent.Commands)
	assert.Equal(t, []int{11}, p.EventsSeen.Values())
	assert.Empty(t, p.MailReceived.Values())
	assert.Empty(t, p.ResponsesAnswered.Values())
}

func TestCheckEventMalformedCommands(t *testing.T) {
	f := newFixture(t, model.Document{})
	f.seen(10)
	f.game.Player.ResponsesAnswered.Append(5)

	f.game.CurrentEvent = &model.Event{ID: "ev1", Commands: []string{
		"forgetEvent", "forgetEvent 10 11", "forgetEvent ten", "forgetResponse five", "forgetResponse 5",
	}}
	f.r.CheckEvent()

	assert.Empty(t, f.game.CurrentEvent.Commands)
	assert.Equal(t, []int{10}, f.game.Player.EventsSeen.Values())
	assert.Empty(t, f.game.Player.ResponsesAnswered.Values())
	out := f.logs.String()
	assert.Contains(t, out, "command requires one argument")
	assert.Contains(t, out, "could not parse event ID")
	assert.Contains(t, out, "could not parse response ID")
}

func TestCheckEventFiresOncePerEvent(t *testing.T) {
	f := newFixture(t, model.Document{})
	ev := &model.Event{ID: "ev1", Commands: []string{"forgetEvent 1"}}
	f.game.CurrentEvent = ev

	assert.True(t, f.r.CheckEvent())
	// the host re-marks the event; polling again must not strip it
	f.seen(1)
	ev.Commands = append(ev.Commands, "forgetEvent 1")
	assert.False(t, f.r.CheckEvent())
	assert.False(t, f.r.CheckEvent())
	assert.Equal(t, []int{1}, f.game.Player.EventsSeen.Values())
	assert.Equal(t, "ev1", f.r.LastEvent())

	f.game.CurrentEvent = nil
	assert.False(t, f.r.CheckEvent())
	assert.Empty(t, f.r.LastEvent())

	f.game.CurrentEvent = &model.Event{ID: "ev2", Commands: []string{"forgetEvent 1"}}
	assert.True(t, f.r.CheckEvent())
	assert.Empty(t, f.game.Player.EventsSeen.Values())
}

func TestWatcherDetectsSwitchBetweenEvents(t *testing.T) {
	var w EventWatcher
	assert.False(t, w.InEvent())
	assert.True(t, w.Observe(&model.Event{ID: "a"}))
	assert.True(t, w.InEvent())
	assert.True(t, w.Observe(&model.Event{ID: "b"}))
	assert.False(t, w.Observe(&model.Event{ID: "b"}))

	w.Restore("c")
	assert.False(t, w.Observe(&model.Event{ID: "c"}))
}

func TestAttachTickAndLaunch(t *testing.T) {
	packDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(packDir, "content.json"),
		[]byte(`{"RepeatEvents":[100],"RepeatMail":["ccMail"]}`), 0o644))

	f := newFixture(t, model.Document{})
	lc := host.NewLifecycle(f.game)
	f.r.Attach(lc, staticRegistry{packs: []content.Pack{{
		Manifest: model.Manifest{UniqueID: "a.pack", Dependencies: []model.Dependency{{UniqueID: "MissCoriel.EventRepeater"}}},
		Dir:      packDir,
	}}}, "misscoriel.eventrepeater")

	lc.Launch()
	require.True(t, f.r.Forgettables().HasEvent(100))
	require.True(t, f.r.Forgettables().HasMail("ccMail"))

	f.seen(100, 3)
	f.game.CurrentEvent = &model.Event{ID: "e", Commands: []string{"forgetEvent 3", "end"}}
	lc.Tick()
	lc.Tick()
	assert.Equal(t, []string{"end"}, f.game.CurrentEvent.Commands)
	assert.Equal(t, []int{100}, f.game.Player.EventsSeen.Values())

	lc.StartDay()
	assert.Empty(t, f.game.Player.EventsSeen.Values())
}
