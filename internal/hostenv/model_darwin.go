package hostenv

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func probeModel() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", fmt.Errorf("sysctl hw.model: %w", err)
	}
	return model, nil
}
