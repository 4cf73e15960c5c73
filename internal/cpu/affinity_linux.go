//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to the given core. The returned release function restores the previous
// affinity and unlocks the thread; it must run on the same goroutine.
//
// When the affinity cannot be changed the goroutine stays locked to its
// thread, release is still valid and the error is returned.
func Pin(core int) (func(), error) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		return runtime.UnlockOSThread, err
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(normalize(core))

	if err := unix.SchedSetaffinity(0, &mask); err != nil { // 0 = current thread
		return runtime.UnlockOSThread, err
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
