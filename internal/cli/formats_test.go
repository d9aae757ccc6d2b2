package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsCommand(t *testing.T) {
	c, engine := newTestContainer(nil)
	engine.FormatList = []string{"dot", "png", "svg"}

	stdout, _, err := execute(t, c, "", "formats")

	require.NoError(t, err)
	assert.Equal(t, "dot\npng\nsvg (default)\n", stdout)
}

func TestFormatsCommand_RejectsArgs(t *testing.T) {
	c, _ := newTestContainer(nil)

	_, _, err := execute(t, c, "", "formats", "svg")

	assert.Error(t, err)
}
