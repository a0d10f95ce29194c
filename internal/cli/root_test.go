package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.0.0")
	require.NotNil(t, root)

	assert.Equal(t, "woyofal", root.Use)
	assert.Equal(t, "1.0.0", root.Version)

	names := make([]string, 0)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "estimate")
	assert.Contains(t, names, "appliance")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "tui")
}

func TestRootCmd_Help(t *testing.T) {
	root := NewRootCmd("test")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "woyofal estimate --energy 550")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	// Test processes have no TTY on stdout, so the session must refuse
	// to start instead of garbling redirected output.
	_, err := execute(t, "tui")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotATerminal)
}
