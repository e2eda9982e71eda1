package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, -20, Clamp(-25, -20, 19))
	assert.Equal(t, 19, Clamp(30, -20, 19))
	assert.Equal(t, 3, Clamp(3, -20, 19))
}

func TestCoalescePtr(t *testing.T) {
	a, b := "a", "b"
	assert.Nil(t, CoalescePtr[string](nil, nil))
	assert.Equal(t, &a, CoalescePtr[string](nil, &a, &b))
}

func TestNonEmpty(t *testing.T) {
	assert.Nil(t, NonEmpty(""))
	require.NotNil(t, NonEmpty("x"))
	assert.Equal(t, "x", *NonEmpty("x"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "priority.yml")

	ok, err := FileExists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("level: idle\n"), 0644))
	ok, err = FileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = FileExists(dir)
	assert.Error(t, err)
}
