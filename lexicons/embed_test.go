package lexicons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"nine-layer-v1", "optimized-v2"}, Names())
}

func TestRead(t *testing.T) {
	data, err := Read(Default)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: optimized-v2")

	_, err = Read("missing")
	assert.Error(t, err)
}
