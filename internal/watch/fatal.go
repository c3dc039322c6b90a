// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"errors"
	"slices"
)

// isFatal reports whether an fsnotify error means the watcher can no longer
// deliver events. The platform's resource exhaustion codes are listed in
// fatalErrnos.
func isFatal(err error) bool {
	return slices.ContainsFunc(fatalErrnos, func(errno error) bool {
		return errors.Is(err, errno)
	})
}
