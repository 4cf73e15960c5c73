// Package sysinfo identifies the toolchain and the operating system a run
// was measured on.
package sysinfo

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Unknown is reported when the operating system cannot be identified.
const Unknown = "unknown"

var errUnsupported = errors.New("operating system identification not supported")

// Compiler returns the identity of the toolchain that built the binary, for
// example "go1.24.0 gc linux/amd64".
func Compiler() string {
	return fmt.Sprintf("%s %s %s/%s", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
}

// OperatingSystem returns "<sysname> <machine> <release>". When detection
// fails it returns Unknown together with the cause.
func OperatingSystem() (string, error) {
	sysname, machine, release, err := uname()
	if err != nil {
		return Unknown, err
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{sysname, machine, release} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Unknown, errUnsupported
	}
	return strings.Join(parts, " "), nil
}
