package mageutil

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
	log "github.com/sirupsen/logrus"

	"github.com/openimsdk/procprio/priority"
)

type priorityController interface {
	Get() (priority.Level, error)
	Set(level priority.Level) error
}

var processPriority priorityController = priority.Default()

// ProcessPriority describes the calling process.
type ProcessPriority struct {
	PID   int32
	Name  string
	Level priority.Level
}

func CurrentPriority() (ProcessPriority, error) {
	level, err := processPriority.Get()
	if err != nil {
		return ProcessPriority{}, err
	}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessPriority{}, errors.Wrap(err, "failed to inspect current process")
	}
	name, err := p.Name()
	if err != nil {
		return ProcessPriority{}, errors.Wrap(err, "failed to read process name")
	}
	return ProcessPriority{PID: p.Pid, Name: name, Level: level}, nil
}

// ShowPriority logs the priority of the calling process.
func ShowPriority() error {
	cur, err := CurrentPriority()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"pid": cur.PID, "name": cur.Name}).Infof("Current priority: %s", cur.Level)
	return nil
}

// ApplyConfiguredPriority resolves opts, applies the log level and sets the
// configured priority on the calling process.
func ApplyConfiguredPriority(opts *PriorityOptions) (PrioritySettings, error) {
	settings, err := ResolvePriorityOptions(opts)
	if err != nil {
		return PrioritySettings{}, err
	}
	log.SetLevel(settings.LogLevel)
	if err := processPriority.Set(settings.Level); err != nil {
		return settings, errors.Wrapf(err, "failed to set priority %s", settings.Level)
	}
	log.Infof("Priority set to %s", settings.Level)
	return settings, nil
}

// RunWithPriority runs cmd while the calling process holds level, so the
// child inherits it. The previous level is restored afterwards when the OS
// allows it.
func RunWithPriority(level priority.Level, env map[string]string, cmd string, args ...string) error {
	previous, err := processPriority.Get()
	if err != nil {
		return errors.Wrap(err, "failed to read current priority")
	}
	if err := processPriority.Set(level); err != nil {
		return errors.Wrapf(err, "failed to set priority %s", level)
	}
	defer restorePriority(previous, level)

	log.WithField("priority", level).Infof("Running %s %v", cmd, args)
	return sh.RunWithV(env, cmd, args...)
}

// RunConfigured runs cmd with the priority resolved from opts.
func RunConfigured(opts *PriorityOptions, cmd string, args ...string) error {
	settings, err := ResolvePriorityOptions(opts)
	if err != nil {
		return err
	}
	log.SetLevel(settings.LogLevel)
	return RunWithPriority(settings.Level, nil, cmd, args...)
}

func restorePriority(previous, current priority.Level) {
	if previous == current {
		return
	}
	if err := processPriority.Set(previous); err != nil {
		if errors.Is(err, priority.ErrPermissionDenied) {
			log.Warnf("Priority stays %s: restoring %s needs more privilege", current, previous)
			return
		}
		log.Errorf("Failed to restore priority %s: %v", previous, err)
	}
}
