//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

func uname() (sysname, machine, release string, err error) {
	return "", "", "", errUnsupported
}
