package priority

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLevelsOrder(t *testing.T) {
	levels := Levels()
	require.Len(t, levels, 5)
	assert.Equal(t, High, levels[0])
	assert.Equal(t, Idle, levels[4])
	for i := 1; i < len(levels); i++ {
		assert.True(t, levels[i-1].Higher(levels[i]), "%s should be higher than %s", levels[i-1], levels[i])
	}
}

func TestLevelValid(t *testing.T) {
	for _, l := range Levels() {
		assert.True(t, l.Valid(), l.String())
	}
	assert.False(t, Level(0).Valid())
	assert.False(t, Level(6).Valid())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"high", High},
		{"HIGH", High},
		{"above_normal", AboveNormal},
		{"Above-Normal", AboveNormal},
		{"abovenormal", AboveNormal},
		{" normal ", Normal},
		{"below_normal", BelowNormal},
		{"belownormal", BelowNormal},
		{"idle", Idle},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("realtime")
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestLevelYAML(t *testing.T) {
	var cfg struct {
		Level Level `yaml:"level"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("level: below-normal\n"), &cfg))
	assert.Equal(t, BelowNormal, cfg.Level)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "level: below_normal\n", string(out))

	err = yaml.Unmarshal([]byte("level: turbo\n"), &cfg)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestLevelMarshalInvalid(t *testing.T) {
	_, err := Level(0).MarshalText()
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}
