package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxnID(t *testing.T) {
	t.Run("Prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(TxnID(), "TXN-"))
	})

	t.Run("UniqueAndIncreasing", func(t *testing.T) {
		prev := int64(0)

		for i := 0; i < 1000; i++ {
			id := TxnID()

			token, err := strconv.ParseInt(strings.TrimPrefix(id, "TXN-"), 10, 64)
			require.NoError(t, err)
			assert.Greater(t, token, prev)

			prev = token
		}
	})
}
