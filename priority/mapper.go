package priority

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Mapper translates Levels to and from the native priority of the current
// process.
//
// POSIX niceness is only adjustable by delta, so the Mapper keeps the last
// absolute niceness it set or read. The cache is guarded by mu for the whole
// read-modify-write of Set.
type Mapper struct {
	platform Platform
	classes  ClassAccessor
	nice     NiceAccessor
	logger   log.FieldLogger

	mu       sync.Mutex
	niceness int
	loaded   bool
}

type Option func(*Mapper)

func WithPlatform(p Platform) Option {
	return func(m *Mapper) { m.platform = p }
}

func WithClassAccessor(a ClassAccessor) Option {
	return func(m *Mapper) { m.classes = a }
}

func WithNiceAccessor(a NiceAccessor) Option {
	return func(m *Mapper) { m.nice = a }
}

// WithNiceness seeds the niceness cache instead of reading it from the
// NiceAccessor on first use.
func WithNiceness(n int) Option {
	return func(m *Mapper) {
		m.niceness = n
		m.loaded = true
	}
}

func WithLogger(l log.FieldLogger) Option {
	return func(m *Mapper) { m.logger = l }
}

// NewMapper returns a Mapper for the host platform and native accessors,
// overridden by opts.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		platform: Host(),
		classes:  HostClassAccessor(),
		nice:     HostNiceAccessor(),
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithField("component", "priority")
	return m
}

// Get returns the level nearest to the current native priority.
func (m *Mapper) Get() (Level, error) {
	o := m.platform.OS()
	switch {
	case o.IsWindows():
		return m.getClass()
	case o.IsLinux(), o.IsDarwin():
		return m.getNiceness(tableFor(o))
	}
	return 0, errors.Wrapf(ErrPlatformUnsupported, "get on %s", o)
}

// Set applies level to the current process.
func (m *Mapper) Set(level Level) error {
	if !level.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "set %d", int(level))
	}
	o := m.platform.OS()
	switch {
	case o.IsWindows():
		return m.setClass(level)
	case o.IsLinux(), o.IsDarwin():
		return m.setNiceness(o, tableFor(o), level)
	}
	return errors.Wrapf(ErrPlatformUnsupported, "set on %s", o)
}

func (m *Mapper) getClass() (Level, error) {
	if m.classes == nil {
		return 0, errors.Wrap(ErrPlatformUnsupported, "no priority class accessor")
	}
	class, err := m.classes.PriorityClass(m.classes.CurrentProcess())
	if err != nil {
		return 0, nativeErr("get priority class", err)
	}
	level := classLevel(class)
	m.logger.WithFields(log.Fields{"class": class, "level": level}).Debug("read priority class")
	return level, nil
}

func (m *Mapper) setClass(level Level) error {
	if m.classes == nil {
		return errors.Wrap(ErrPlatformUnsupported, "no priority class accessor")
	}
	class := levelClass(level)
	if err := m.classes.SetPriorityClass(m.classes.CurrentProcess(), class); err != nil {
		return nativeErr("set priority class", err)
	}
	m.logger.WithFields(log.Fields{"class": class, "level": level}).Debug("set priority class")
	return nil
}

func (m *Mapper) getNiceness(table nicenessTable) (Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.loadLocked(); err != nil {
		return 0, err
	}
	return table.classify(m.niceness), nil
}

func (m *Mapper) setNiceness(o OS, table nicenessTable, level Level) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nice == nil {
		return errors.Wrap(ErrPlatformUnsupported, "no niceness accessor")
	}
	if err := m.loadLocked(); err != nil {
		return err
	}
	target := table.representative(level)
	delta := target - m.niceness
	result, err := m.nice.Nice(delta)
	if err != nil {
		return nativeErr("nice", err)
	}
	m.logger.WithFields(log.Fields{
		"os":       o,
		"level":    level,
		"niceness": target,
		"delta":    delta,
		"result":   result,
	}).Debug("adjusted niceness")
	m.niceness = target
	return nil
}

func (m *Mapper) loadLocked() error {
	if m.loaded {
		return nil
	}
	if m.nice == nil {
		return errors.Wrap(ErrPlatformUnsupported, "no niceness accessor")
	}
	n, err := m.nice.Niceness()
	if err != nil {
		return nativeErr("read niceness", err)
	}
	m.niceness = n
	m.loaded = true
	return nil
}
