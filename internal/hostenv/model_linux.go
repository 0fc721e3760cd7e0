package hostenv

import (
	"fmt"
	"os"
	"strings"
)

const dmiProductName = "/sys/devices/virtual/dmi/id/product_name"

func probeModel() (string, error) {
	data, err := os.ReadFile(dmiProductName)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dmiProductName, err)
	}
	return strings.TrimSpace(string(data)), nil
}
