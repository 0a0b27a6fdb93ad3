package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Demo(t *testing.T) {
	s, err := DemoScenario()
	require.NoError(t, err)

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.Equal(t, GoldenRunID, result.RunID)
	assert.True(t, result.OK())
}
