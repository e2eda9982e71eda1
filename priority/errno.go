//go:build !plan9

package priority

import "syscall"

// getpriorityErrnos are the failures getpriority reports for PRIO_PROCESS.
var getpriorityErrnos = []error{syscall.ESRCH, syscall.EINVAL}
