package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	cmd := Steps()

	require.NotNil(t, cmd)
	assert.Equal(t, "steps", cmd.Use)
	assert.Equal(t, "List the steps of a flow", cmd.Short)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)

	flow := cmd.Flags().Lookup("flow")
	require.NotNil(t, flow)
	assert.Equal(t, "f", flow.Shorthand)
}

func TestSteps_RejectsArgs(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"steps", "extra"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestSteps_UnsupportedFormat(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"steps", "-o", "json"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
