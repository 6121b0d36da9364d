package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	first, err := GenerateRunID()
	require.NoError(t, err)
	second, err := GenerateRunID()
	require.NoError(t, err)

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}
