// Package cpu keeps a measuring goroutine on a single OS thread, and where
// the platform allows it, on a single CPU core.
package cpu

import "runtime"

// normalize maps any core number onto [0, NumCPU).
func normalize(core int) int {
	n := runtime.NumCPU()
	core %= n
	if core < 0 {
		core += n
	}
	return core
}
