//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import "golang.org/x/sys/unix"

func uname() (sysname, machine, release string, err error) {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return "", "", "", err
	}
	return unix.ByteSliceToString(buf.Sysname[:]),
		unix.ByteSliceToString(buf.Machine[:]),
		unix.ByteSliceToString(buf.Release[:]),
		nil
}
