package priority

import "syscall"

var getpriorityErrnos = []error{syscall.EINVAL}
