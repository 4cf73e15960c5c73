package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/fatih/color"
)

// setupProfiling starts the requested profiles and returns the function
// that stops and writes them.
func setupProfiling(w io.Writer, cpuProfile, memProfile string) (func(), error) {
	red := color.New(color.FgRed)
	cleanups := make([]func(), 0, 2)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return nil, fmt.Errorf("failed to create CPU profile: %w", err)
		}

		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}

		_, _ = fmt.Fprintf(w, "CPU profiling enabled, writing to: %s\n", cpuProfile)

		cleanups = append(cleanups, func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}

	if memProfile != "" {
		cleanups = append(cleanups, func() {
			f, err := os.Create(memProfile)
			if err != nil {
				_, _ = red.Fprintf(w, "Error creating memory profile: %v\n", err)
				return
			}
			defer func(f *os.File) {
				if err := f.Close(); err != nil {
					_, _ = red.Fprintf(w, "Error closing memory profile file: %v\n", err)
				}
			}(f)

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				_, _ = red.Fprintf(w, "Error writing memory profile: %v\n", err)
				return
			}
			_, _ = fmt.Fprintf(w, "Memory profile written to: %s\n", memProfile)
		})
	}

	return func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}, nil
}
