// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import "syscall"

// inotify watch limit, then per-process and system-wide descriptor limits.
var fatalErrnos = []error{syscall.ENOSPC, syscall.EMFILE, syscall.ENFILE}
