package priority

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrPlatformUnsupported is returned when the running OS is not Windows,
	// Linux or Darwin.
	ErrPlatformUnsupported = errors.New("priority: platform unsupported")
	// ErrPermissionDenied matches native failures the OS reports as a
	// permission problem, typically raising priority without privilege.
	ErrPermissionDenied = errors.New("priority: permission denied")
	// ErrNativeCallFailed matches every other native failure.
	ErrNativeCallFailed = errors.New("priority: native call failed")
	ErrInvalidLevel     = errors.New("priority: invalid level")
)

// NativeCallError carries the OS error of a failed native priority call.
type NativeCallError struct {
	Op  string
	Err error
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("priority: %s: %v", e.Op, e.Err)
}

func (e *NativeCallError) Unwrap() error {
	return e.Err
}

func (e *NativeCallError) Is(target error) bool {
	switch target {
	case ErrPermissionDenied:
		return e.permission()
	case ErrNativeCallFailed:
		return !e.permission()
	}
	return false
}

func (e *NativeCallError) permission() bool {
	return errors.Is(e.Err, os.ErrPermission)
}

func nativeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NativeCallError{Op: op, Err: err}
}
