// Package platform reports architecture facts used to disambiguate reference
// images recorded on different hosts.
package platform

import (
	"math/bits"
	"slices"
)

// Suffix64Bit is appended to reference directories on 64-bit hosts.
const Suffix64Bit = "64"

// Is64Bit reports whether the native word width of the running process is 64 bits.
//
// Postcondition: Result is constant for the lifetime of the process.
func Is64Bit() bool {
	return bits.UintSize == 64
}

// DefaultSuffixes returns the architecture suffixes tried when the caller
// supplies none of its own.
//
// Postcondition: Returns ["64"] on a 64-bit host and an empty set otherwise.
// The returned value shares no state with later calls.
func DefaultSuffixes() Suffixes {
	return suffixesFor(Is64Bit())
}

func suffixesFor(is64 bool) Suffixes {
	if is64 {
		return NewSuffixes(Suffix64Bit)
	}
	return NewSuffixes()
}

// Suffixes is an ordered set of suffix strings. Insertion order is
// significant and duplicates are dropped.
//
// Invariant: No value appears twice in values.
type Suffixes struct {
	values []string
}

// NewSuffixes builds a Suffixes from values, keeping the first occurrence of
// any duplicate.
func NewSuffixes(values ...string) Suffixes {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return Suffixes{values: out}
}

// Values returns a copy of the suffixes in order.
func (s Suffixes) Values() []string {
	return slices.Clone(s.values)
}

// Len returns the number of suffixes.
func (s Suffixes) Len() int {
	return len(s.values)
}

// Contains reports whether v is in the set.
func (s Suffixes) Contains(v string) bool {
	return slices.Contains(s.values, v)
}
