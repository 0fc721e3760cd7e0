//go:build linux || darwin || freebsd || netbsd || openbsd

package hostenv

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func probeUname() (utsname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return utsname{}, fmt.Errorf("uname: %w", err)
	}
	return utsname{
		release: unix.ByteSliceToString(u.Release[:]),
		machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
