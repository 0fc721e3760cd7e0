//go:build !linux && !darwin

package hostenv

import "errors"

func probeModel() (string, error) {
	return "", errors.New("hardware model probe not supported on this platform")
}
