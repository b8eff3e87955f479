package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorCommandsAcceptNegativeIDsAfterSeparator(t *testing.T) {
	cmd, _, err := RootCmd.Find([]string{"forget-event"})
	require.NoError(t, err)
	require.Equal(t, "forget-event", cmd.Name())

	require.NoError(t, cmd.ParseFlags([]string{"--", "-5"}))
	assert.Equal(t, []string{"-5"}, cmd.Flags().Args())
	assert.Contains(t, cmd.Long, "--")

	show, _, err := RootCmd.Find([]string{"show-events"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(show.Long, "separator"))
}
