package repeater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/event-repeater/internal/console"
	"github.com/rcliao/event-repeater/internal/model"
)

func newRegistry(t *testing.T, f *fixture) *console.Registry {
	t.Helper()
	reg := console.NewRegistry()
	require.NoError(t, f.r.Register(reg))
	return reg
}

func TestRegisterAllCommands(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)

	for _, name := range []string{
		"forget-event", "show-events", "show-mail", "forget-mail", "send-mail",
		"show-responses", "forget-response", "repeater-add", "repeater-save",
		"repeater-load", "inject",
	} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Error(t, f.r.Register(reg), "double registration")
}

func TestForgetCommandsIgnoreBadInput(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)
	f.seen(1, 2)
	p := f.game.Player
	p.MailReceived.Append("m")
	p.ResponsesAnswered.Append(8)

	assert.NoError(t, reg.Dispatch("forget-event x"))
	assert.NoError(t, reg.Dispatch("forget-event"))
	assert.NoError(t, reg.Dispatch("forget-event 2"))
	assert.NoError(t, reg.Dispatch("forget-mail m"))
	assert.NoError(t, reg.Dispatch("forget-response nope"))
	assert.NoError(t, reg.Dispatch("forget-response 8"))

	assert.Equal(t, []int{1}, p.EventsSeen.Values())
	assert.Empty(t, p.MailReceived.Values())
	assert.Empty(t, p.ResponsesAnswered.Values())
}

func TestShowCommands(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)
	f.seen(3, 4)
	f.game.Player.MailReceived.Append("a")
	f.game.Player.MailReceived.Append("b")

	require.NoError(t, reg.Dispatch("show-events"))
	require.NoError(t, reg.Dispatch("show-mail"))
	require.NoError(t, reg.Dispatch("show-responses"))
	out := f.logs.String()
	assert.Contains(t, out, "events seen: 3, 4")
	assert.Contains(t, out, "mail seen: a, b")
	assert.Contains(t, out, "response IDs: ")
}

func TestSendMailQueuesForTomorrow(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)

	require.NoError(t, reg.Dispatch("send-mail ccBoard"))
	assert.Equal(t, []string{"ccBoard"}, f.game.MailForTomorrow)
	assert.Empty(t, f.game.Player.MailReceived.Values())
}

func TestInjectEvent(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)

	require.NoError(t, reg.Dispatch("inject event 55"))
	assert.Equal(t, []int{55}, f.game.Player.EventsSeen.Values())

	require.NoError(t, reg.Dispatch("inject event 55"))
	assert.Equal(t, []int{55}, f.game.Player.EventsSeen.Values())
	assert.Contains(t, f.logs.String(), "55 already exists within seen events")
}

func TestInjectMailAndResponse(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)

	require.NoError(t, reg.Dispatch("inject mail hello"))
	require.NoError(t, reg.Dispatch("inject mail hello"))
	require.NoError(t, reg.Dispatch("inject response 12"))
	assert.Equal(t, []string{"hello"}, f.game.Player.MailReceived.Values())
	assert.Equal(t, []int{12}, f.game.Player.ResponsesAnswered.Values())
}

func TestInjectArgumentErrors(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)

	assert.NoError(t, reg.Dispatch("inject"))
	assert.NoError(t, reg.Dispatch("inject response"))
	assert.Contains(t, f.logs.String(), "no response ID entered")

	assert.Error(t, reg.Dispatch("inject event abc"))
	assert.Error(t, reg.Dispatch("inject response abc"))
	assert.Empty(t, f.game.Player.EventsSeen.Values())
	assert.Empty(t, f.game.Player.ResponsesAnswered.Values())
}

func TestRepeaterCommands(t *testing.T) {
	f := newFixture(t, model.Document{})
	reg := newRegistry(t, f)
	f.seen(1, 2, 3)

	require.NoError(t, reg.Dispatch("repeater-add"))
	require.NoError(t, reg.Dispatch("repeater-add 1"))
	require.NoError(t, reg.Dispatch("repeater-save mine"))
	require.NoError(t, reg.Dispatch("repeater-save"))
	require.NoError(t, reg.Dispatch("repeater-load mine"))
	assert.Equal(t, []int{3, 1, 3, 1}, f.r.Manual())
	assert.Equal(t, []int{2}, f.game.Player.EventsSeen.Values())
}
