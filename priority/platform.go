package priority

import "runtime"

// OS identifies the priority mechanism in use.
type OS int

const (
	Unknown OS = iota
	Windows
	Linux
	Darwin
)

func (o OS) IsWindows() bool { return o == Windows }
func (o OS) IsLinux() bool   { return o == Linux }
func (o OS) IsDarwin() bool  { return o == Darwin }

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	default:
		return "unknown"
	}
}

// Platform reports which OS a Mapper should translate for. It is consulted on
// every call.
type Platform interface {
	OS() OS
}

// Static is a Platform fixed to one OS.
type Static OS

func (s Static) OS() OS { return OS(s) }

type hostPlatform struct{}

func (hostPlatform) OS() OS { return osFromGOOS(runtime.GOOS) }

// Host returns the Platform detected from the running binary.
func Host() Platform { return hostPlatform{} }

func osFromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "linux", "android":
		return Linux
	case "darwin", "ios":
		return Darwin
	default:
		return Unknown
	}
}
