package priority

// Handle is an opaque process handle returned by ClassAccessor.CurrentProcess.
type Handle uintptr

// ClassAccessor reads and writes Windows priority classes.
type ClassAccessor interface {
	CurrentProcess() Handle
	PriorityClass(h Handle) (Class, error)
	SetPriorityClass(h Handle, class Class) error
}

// NiceAccessor reads and adjusts POSIX niceness of the calling process.
// Nice is relative: it adds delta to the current niceness and returns the
// resulting value.
type NiceAccessor interface {
	Niceness() (int, error)
	Nice(delta int) (int, error)
}

// HostClassAccessor returns the Windows accessor, or nil on other systems.
func HostClassAccessor() ClassAccessor {
	return hostClassAccessor()
}

// HostNiceAccessor returns the POSIX accessor, or nil where niceness is not
// available.
func HostNiceAccessor() NiceAccessor {
	return hostNiceAccessor()
}
