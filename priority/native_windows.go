//go:build windows

package priority

import (
	"golang.org/x/sys/windows"
)

type windowsClasses struct{}

// CurrentProcess returns the pseudo handle of the calling process; it needs
// no CloseHandle.
func (windowsClasses) CurrentProcess() Handle {
	return Handle(windows.CurrentProcess())
}

func (windowsClasses) PriorityClass(h Handle) (Class, error) {
	class, err := windows.GetPriorityClass(windows.Handle(h))
	if err != nil {
		return 0, err
	}
	return Class(class), nil
}

func (windowsClasses) SetPriorityClass(h Handle, class Class) error {
	return windows.SetPriorityClass(windows.Handle(h), uint32(class))
}

func hostClassAccessor() ClassAccessor { return windowsClasses{} }

func hostNiceAccessor() NiceAccessor { return nil }
