package mageutil

import (
	"os"

	"github.com/caarlos0/env"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/openimsdk/procprio/internal/util"
	"github.com/openimsdk/procprio/priority"
)

const (
	PriorityConfigFile = "priority.yml"
	defaultLevel       = priority.Normal
	defaultLogLevel    = log.InfoLevel
)

// PriorityOptions are set from code; nil fields fall back to the environment,
// then to the config file, then to defaults.
type PriorityOptions struct {
	Level      *string
	LogLevel   *string
	ConfigFile *string
}

// PrioritySettings is the resolved form of PriorityOptions.
type PrioritySettings struct {
	Level    priority.Level
	LogLevel log.Level
}

type priorityEnv struct {
	Level      string `env:"PROCPRIO_LEVEL"`
	LogLevel   string `env:"PROCPRIO_LOG_LEVEL"`
	ConfigFile string `env:"PROCPRIO_CONFIG"`
}

type priorityFile struct {
	Level    *priority.Level `yaml:"level,omitempty"`
	LogLevel string          `yaml:"logLevel,omitempty"`
}

func resolvePriorityOptionsFromEnv() (PriorityOptions, error) {
	var e priorityEnv
	if err := env.Parse(&e); err != nil {
		return PriorityOptions{}, errors.Wrap(err, "failed to parse priority env")
	}
	return PriorityOptions{
		Level:      util.NonEmpty(e.Level),
		LogLevel:   util.NonEmpty(e.LogLevel),
		ConfigFile: util.NonEmpty(e.ConfigFile),
	}, nil
}

func loadPriorityFile(path string) (PriorityOptions, error) {
	exists, err := util.FileExists(path)
	if err != nil || !exists {
		return PriorityOptions{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PriorityOptions{}, errors.Wrapf(err, "failed to read %s", path)
	}
	var f priorityFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return PriorityOptions{}, errors.Wrapf(err, "failed to parse %s", path)
	}
	opts := PriorityOptions{LogLevel: util.NonEmpty(f.LogLevel)}
	if f.Level != nil {
		opts.Level = util.NonEmpty(f.Level.String())
	}
	return opts, nil
}

// WritePriorityFile stores settings in the config file format.
func WritePriorityFile(path string, s PrioritySettings) error {
	out, err := yaml.Marshal(priorityFile{Level: &s.Level, LogLevel: s.LogLevel.String()})
	if err != nil {
		return errors.Wrap(err, "failed to encode priority settings")
	}
	return errors.Wrapf(os.WriteFile(path, out, 0644), "failed to write %s", path)
}

// ResolvePriorityOptions merges code, environment and config file options.
func ResolvePriorityOptions(codeOpt *PriorityOptions) (PrioritySettings, error) {
	fromCode := PriorityOptions{}
	if codeOpt != nil {
		fromCode = *codeOpt
	}
	fromEnv, err := resolvePriorityOptionsFromEnv()
	if err != nil {
		return PrioritySettings{}, err
	}

	path := PriorityConfigFile
	if p := util.CoalescePtr(fromCode.ConfigFile, fromEnv.ConfigFile); p != nil {
		path = *p
	}
	fromFile, err := loadPriorityFile(path)
	if err != nil {
		return PrioritySettings{}, err
	}

	settings := PrioritySettings{Level: defaultLevel, LogLevel: defaultLogLevel}
	if v := util.CoalescePtr(fromCode.Level, fromEnv.Level, fromFile.Level); v != nil {
		if settings.Level, err = priority.ParseLevel(*v); err != nil {
			return PrioritySettings{}, err
		}
	}
	if v := util.CoalescePtr(fromCode.LogLevel, fromEnv.LogLevel, fromFile.LogLevel); v != nil {
		if settings.LogLevel, err = log.ParseLevel(*v); err != nil {
			return PrioritySettings{}, errors.Wrap(err, "invalid log level")
		}
	}
	return settings, nil
}
