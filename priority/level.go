// Package priority reads and sets the scheduling priority of the current
// process using one five-level scale across Windows, Linux and Darwin.
package priority

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Level is the platform independent scheduling priority of a process.
// Levels are ordered from High (most favourably scheduled) down to Idle.
type Level int

const (
	Idle Level = iota + 1
	BelowNormal
	Normal
	AboveNormal
	High
)

var levelNames = map[Level]string{
	High:        "high",
	AboveNormal: "above_normal",
	Normal:      "normal",
	BelowNormal: "below_normal",
	Idle:        "idle",
}

// Levels returns every level, highest first.
func Levels() []Level {
	return []Level{High, AboveNormal, Normal, BelowNormal, Idle}
}

func (l Level) Valid() bool {
	return l >= Idle && l <= High
}

// Higher reports whether l is scheduled more favourably than other.
func (l Level) Higher(other Level) bool {
	return l > other
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel accepts the names returned by String, case-insensitively, with
// '-' or no separator in place of '_'.
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for level, name := range levelNames {
		if key == name || key == strings.ReplaceAll(name, "_", "") {
			return level, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "parse %q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrInvalidLevel, "marshal %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) MarshalYAML() (interface{}, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
