package gonumgraph_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, key string) int64 {
	t.Helper()
	id, err := strconv.ParseInt(key, 10, 64)
	require.NoError(t, err)

	return id
}
