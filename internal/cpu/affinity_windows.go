//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to the given core. The returned release function restores the previous
// affinity mask and unlocks the thread.
func Pin(core int) (func(), error) {
	runtime.LockOSThread()

	handle, _, _ := getCurrentThread.Call()

	// Bit N = CPU N
	mask := uintptr(1) << uint(normalize(core))

	prevMask, _, err := setThreadAffinityMask.Call(handle, mask)
	if prevMask == 0 {
		return runtime.UnlockOSThread, err
	}

	return func() {
		_, _, _ = setThreadAffinityMask.Call(handle, prevMask)
		runtime.UnlockOSThread()
	}, nil
}
