package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when an option name cannot be parsed.
var ErrUnknownOption = errors.New("unknown option")

// AgnosticOption selects the dimensions the reference file name is folded on.
// Values may be combined with bitwise OR.
type AgnosticOption uint

const (
	// AgnosticOptionNone appends no descriptor.
	AgnosticOptionNone AgnosticOption = 1 << iota
	// AgnosticOptionDevice appends the device model.
	AgnosticOptionDevice
	// AgnosticOptionOS appends the OS version.
	AgnosticOptionOS
	// AgnosticOptionScreenSize appends the screen size.
	AgnosticOptionScreenSize
)

// IncludeOption selects the descriptors included in the reference file name.
// Values may be combined with bitwise OR.
type IncludeOption uint

const (
	// IncludeOptionNone appends no descriptor.
	IncludeOptionNone IncludeOption = 1 << iota
	// IncludeOptionDevice appends the device model.
	IncludeOptionDevice
	// IncludeOptionOS appends the OS version.
	IncludeOptionOS
	// IncludeOptionScreenSize appends the screen size.
	IncludeOptionScreenSize
)

// bit positions shared by both vocabularies
const (
	bitNone uint = 1 << iota
	bitDevice
	bitOS
	bitScreenSize
)

var optionNames = []struct {
	name string
	bit  uint
}{
	{"none", bitNone},
	{"device", bitDevice},
	{"os", bitOS},
	{"screen_size", bitScreenSize},
}

// slots records which descriptors a mask asks for.
type slots struct {
	device     bool
	os         bool
	screenSize bool
}

func slotsFor(mask uint) slots {
	return slots{
		device:     mask&bitDevice != 0,
		os:         mask&bitOS != 0,
		screenSize: mask&bitScreenSize != 0,
	}
}

func (o AgnosticOption) slots() slots { return slotsFor(uint(o)) }

func (o IncludeOption) slots() slots { return slotsFor(uint(o)) }

// String renders the option as a comma separated list of names.
func (o AgnosticOption) String() string { return formatMask(uint(o)) }

// String renders the option as a comma separated list of names.
func (o IncludeOption) String() string { return formatMask(uint(o)) }

// ParseAgnosticOption parses a comma separated list such as "device,os".
// An empty string yields AgnosticOptionNone.
func ParseAgnosticOption(s string) (AgnosticOption, error) {
	mask, err := parseMask(s)
	if err != nil {
		return 0, fmt.Errorf("parsing agnostic option: %w", err)
	}
	return AgnosticOption(mask), nil
}

// ParseIncludeOption parses a comma separated list such as "device,os".
// An empty string yields IncludeOptionNone.
func ParseIncludeOption(s string) (IncludeOption, error) {
	mask, err := parseMask(s)
	if err != nil {
		return 0, fmt.Errorf("parsing include option: %w", err)
	}
	return IncludeOption(mask), nil
}

func parseMask(s string) (uint, error) {
	if strings.TrimSpace(s) == "" {
		return bitNone, nil
	}
	var mask uint
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		name = strings.ReplaceAll(name, "-", "_")
		if name == "screensize" {
			name = "screen_size"
		}
		found := false
		for _, opt := range optionNames {
			if opt.name == name {
				mask |= opt.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w %q (want none, device, os, screen_size)", ErrUnknownOption, part)
		}
	}
	return mask, nil
}

func formatMask(mask uint) string {
	var names []string
	for _, opt := range optionNames {
		if mask&opt.bit != 0 {
			names = append(names, opt.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
