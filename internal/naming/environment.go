package naming

import "errors"

// ErrDescriptorUnavailable reports that the environment cannot supply a descriptor.
var ErrDescriptorUnavailable = errors.New("descriptor unavailable")

// Environment reports the descriptors of the environment a snapshot is taken in.
//
// Implementations are read on every normalization and must be safe for
// concurrent use.
type Environment interface {
	DeviceModel() (string, error)
	OSVersion() (string, error)
	ScreenSize() (string, error)
}

// Descriptor is a fixed device model, OS version and screen size triple.
// It implements Environment; an empty field reads as ErrDescriptorUnavailable.
type Descriptor struct {
	Device string `yaml:"device_model"`
	OS     string `yaml:"os_version"`
	Screen string `yaml:"screen_size"`
}

// DeviceModel returns d.Device.
func (d Descriptor) DeviceModel() (string, error) { return orUnavailable(d.Device) }

// OSVersion returns d.OS.
func (d Descriptor) OSVersion() (string, error) { return orUnavailable(d.OS) }

// ScreenSize returns d.Screen.
func (d Descriptor) ScreenSize() (string, error) { return orUnavailable(d.Screen) }

func orUnavailable(v string) (string, error) {
	if v == "" {
		return "", ErrDescriptorUnavailable
	}
	return v, nil
}
