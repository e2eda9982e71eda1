package priority

import "sync"

var (
	defaultOnce   sync.Once
	defaultMapper *Mapper
)

// Default returns the process-wide Mapper used by Get and Set.
func Default() *Mapper {
	defaultOnce.Do(func() {
		defaultMapper = NewMapper()
	})
	return defaultMapper
}

// Get returns the scheduling priority of the current process.
func Get() (Level, error) {
	return Default().Get()
}

// Set changes the scheduling priority of the current process.
func Set(level Level) error {
	return Default().Set(level)
}
