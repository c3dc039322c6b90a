// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	overrideMu  sync.RWMutex
	dirOverride string
)

func configDirOverride() string {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	return dirOverride
}

// SetConfigDirOverride makes ConfigDir return dir. Tests use it to isolate
// themselves from the user's configuration.
func SetConfigDirOverride(dir string) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	dirOverride = dir
}

// Reset clears any config directory override.
func Reset() {
	SetConfigDirOverride("")
}
