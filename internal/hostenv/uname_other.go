//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package hostenv

import "errors"

func probeUname() (utsname, error) {
	return utsname{}, errors.New("uname not supported on this platform")
}
