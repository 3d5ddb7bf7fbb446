package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestGenerateIDLength(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	// 32 bytes, base64 raw-url encoded
	require.Len(t, id, 43)
}
