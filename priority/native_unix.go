//go:build linux || darwin

package priority

import (
	"golang.org/x/sys/unix"

	"github.com/openimsdk/procprio/internal/util"
)

// pidSelf makes getpriority and setpriority target the calling process.
const pidSelf = 0

type unixNice struct{}

func (unixNice) Niceness() (int, error) {
	return decodeNiceness(unix.Getpriority(unix.PRIO_PROCESS, pidSelf))
}

func (u unixNice) Nice(delta int) (int, error) {
	cur, err := u.Niceness()
	if err != nil {
		return 0, err
	}
	next := util.Clamp(cur+delta, minNiceness, maxNiceness)
	if err := unix.Setpriority(unix.PRIO_PROCESS, pidSelf, next); err != nil {
		return cur, err
	}
	return next, nil
}

func hostClassAccessor() ClassAccessor { return nil }

func hostNiceAccessor() NiceAccessor { return unixNice{} }
