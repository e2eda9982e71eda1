//go:build linux || darwin

package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostNiceness(t *testing.T) {
	n, err := unixNice{}.Niceness()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, minNiceness)
	assert.LessOrEqual(t, n, maxNiceness)
}

func TestHostNiceZeroDelta(t *testing.T) {
	before, err := unixNice{}.Niceness()
	require.NoError(t, err)
	after, err := unixNice{}.Nice(0)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestHostGetPosix(t *testing.T) {
	level, err := NewMapper(WithLogger(quietLogger())).Get()
	require.NoError(t, err)
	assert.True(t, level.Valid())
}
