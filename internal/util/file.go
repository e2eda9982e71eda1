package util

import (
	"os"

	"github.com/pkg/errors"
)

// FileExists reports whether path is an existing regular file. Errors other
// than not-exist are returned.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, errors.Errorf("%s is a directory", path)
		}
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "failed to stat %s", path)
}
