package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	require.True(t, CheckPasswordHash("supersecret", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("supersecret")
	require.NoError(t, err)
	h2, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
