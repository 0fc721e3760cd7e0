package naming

import (
	"strings"

	"go.uber.org/zap"
)

// Normalizer turns base names into reference-image file names using the
// descriptors of an Environment.
//
// Invariant: Normalizer holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	env    Environment
	logger *zap.Logger
}

// NewNormalizer creates a Normalizer reading descriptors from env.
//
// A nil env behaves as an environment that reports nothing. A nil logger is
// replaced by a no-op logger.
func NewNormalizer(env Environment, logger *zap.Logger) *Normalizer {
	if env == nil {
		env = Descriptor{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{env: env, logger: logger}
}

// AgnosticFileName appends the descriptors selected by option to fileName and
// sanitizes the result.
//
// Postcondition: The result contains no whitespace or punctuation other than '_'.
func (n *Normalizer) AgnosticFileName(fileName string, option AgnosticOption) string {
	return n.normalize(fileName, option.slots())
}

// IncludeFileName appends the descriptors selected by option to fileName and
// sanitizes the result.
//
// Postcondition: The result contains no whitespace or punctuation other than '_'.
func (n *Normalizer) IncludeFileName(fileName string, option IncludeOption) string {
	return n.normalize(fileName, option.slots())
}

// Describe reads every descriptor from the environment. Unavailable
// descriptors are left empty.
func (n *Normalizer) Describe() Descriptor {
	return Descriptor{
		Device: n.read("device_model", n.env.DeviceModel),
		OS:     n.read("os_version", n.env.OSVersion),
		Screen: n.read("screen_size", n.env.ScreenSize),
	}
}

func (n *Normalizer) normalize(fileName string, s slots) string {
	var b strings.Builder
	b.WriteString(fileName)
	if s.device {
		b.WriteByte('_')
		b.WriteString(n.read("device_model", n.env.DeviceModel))
	}
	if s.os {
		b.WriteByte('_')
		b.WriteString(n.read("os_version", n.env.OSVersion))
	}
	if s.screenSize {
		b.WriteByte('_')
		b.WriteString(n.read("screen_size", n.env.ScreenSize))
	}
	return Sanitize(b.String())
}

func (n *Normalizer) read(name string, fn func() (string, error)) string {
	v, err := fn()
	if err != nil {
		n.logger.Debug("descriptor unavailable, using empty segment",
			zap.String("descriptor", name),
			zap.Error(err),
		)
		return ""
	}
	return v
}
