//go:build !linux && !windows

package cpu

import "runtime"

// Pin locks the calling goroutine to its OS thread. Core pinning is not
// available on this platform, so core is ignored.
func Pin(core int) (func(), error) {
	_ = core
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}
