package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOptionValues(t *testing.T) {
	assert.Equal(t, AgnosticOption(1), AgnosticOptionNone)
	assert.Equal(t, AgnosticOption(2), AgnosticOptionDevice)
	assert.Equal(t, AgnosticOption(4), AgnosticOptionOS)
	assert.Equal(t, AgnosticOption(8), AgnosticOptionScreenSize)
	assert.Equal(t, IncludeOption(1), IncludeOptionNone)
	assert.Equal(t, IncludeOption(2), IncludeOptionDevice)
	assert.Equal(t, IncludeOption(4), IncludeOptionOS)
	assert.Equal(t, IncludeOption(8), IncludeOptionScreenSize)
}

func TestParseIncludeOption(t *testing.T) {
	tests := []struct {
		input string
		want  IncludeOption
	}{
		{"", IncludeOptionNone},
		{"none", IncludeOptionNone},
		{"device", IncludeOptionDevice},
		{"os, device", IncludeOptionDevice | IncludeOptionOS},
		{"Screen-Size", IncludeOptionScreenSize},
		{"screensize,os", IncludeOptionOS | IncludeOptionScreenSize},
		{"device,os,screen_size", IncludeOptionDevice | IncludeOptionOS | IncludeOptionScreenSize},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIncludeOption(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAgnosticOption(t *testing.T) {
	got, err := ParseAgnosticOption("device,screen_size")
	require.NoError(t, err)
	assert.Equal(t, AgnosticOptionDevice|AgnosticOptionScreenSize, got)
}

func TestParseOption_Unknown(t *testing.T) {
	_, err := ParseIncludeOption("device,locale")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = ParseAgnosticOption("orientation")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "none", AgnosticOption(0).String())
	assert.Equal(t, "none", IncludeOptionNone.String())
	assert.Equal(t, "device,os", (IncludeOptionOS | IncludeOptionDevice).String())
	assert.Equal(t, "none,screen_size", (AgnosticOptionNone | AgnosticOptionScreenSize).String())
	assert.Equal(t, "device", (AgnosticOption(1<<12) | AgnosticOptionDevice).String())
}

// Property: String and Parse round-trip for every combination of known bits.
func TestPropertyIncludeOptionStringParses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opt := IncludeOption(rapid.UintRange(1, 15).Draw(t, "mask"))
		got, err := ParseIncludeOption(opt.String())
		require.NoError(t, err)
		assert.Equal(t, opt, got)
	})
}
