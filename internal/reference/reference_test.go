package reference

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/snapshot/internal/naming"
	"github.com/cory-johannsen/snapshot/internal/platform"
)

var phone = naming.Descriptor{Device: "iPhone", OS: "17.2", Screen: "390x844"}

func includeResolver(option naming.IncludeOption, opts Options) *Resolver {
	return NewIncludeResolver(naming.NewNormalizer(phone, nil), option, opts, nil)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		option naming.IncludeOption
		scale  float64
		key    Key
		want   string
	}{
		{"plain", naming.IncludeOptionNone, 1, Key{Test: "testView"}, "testView.png"},
		{"identifier", naming.IncludeOptionNone, 1, Key{Test: "testView", Identifier: "dark mode"}, "testView_dark_mode.png"},
		{"retina", naming.IncludeOptionNone, 2, Key{Test: "testView"}, "testView@2x.png"},
		{"fractional scale below one", naming.IncludeOptionNone, 0.5, Key{Test: "testView"}, "testView.png"},
		{"descriptors after identifier", naming.IncludeOptionDevice | naming.IncludeOptionOS, 3,
			Key{Test: "testView", Identifier: "a"}, "testView_a_iPhone_17_2@3x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := includeResolver(tt.option, Options{ImagesDir: "ref", Scale: tt.scale})
			assert.Equal(t, tt.want, r.FileName(tt.key))
		})
	}
}

func TestAgnosticResolver(t *testing.T) {
	r := NewAgnosticResolver(naming.NewNormalizer(phone, nil), naming.AgnosticOptionScreenSize, Options{ImagesDir: "ref", Scale: 1}, nil)
	assert.Equal(t, "login_390x844.png", r.FileName(Key{Test: "login"}))
}

func TestDirectories(t *testing.T) {
	r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("_iphone", "64", "")})
	assert.Equal(t, []string{"ref_iphone", "ref64", "ref"}, r.Directories())

	r = includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref"})
	assert.Equal(t, []string{"ref"}, r.Directories())
}

func TestCandidates(t *testing.T) {
	r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("64", ""), Scale: 2})
	assert.Equal(t, []string{
		"ref64/LoginTests/testView@2x.png",
		"ref/LoginTests/testView@2x.png",
	}, r.Candidates(Key{Group: "LoginTests", Test: "testView"}))
}

func TestResolve_FirstExistingWins(t *testing.T) {
	fsys := fstest.MapFS{
		"ref64/Suite/testView.png": {Data: []byte("png")},
		"ref/Suite/testView.png":   {Data: []byte("png")},
	}
	r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("64", ""), Scale: 1})

	got, err := r.Resolve(fsys, Key{Group: "Suite", Test: "testView"})
	require.NoError(t, err)
	assert.Equal(t, "ref64/Suite/testView.png", got)
}

func TestResolve_FallsBackToLessSpecific(t *testing.T) {
	fsys := fstest.MapFS{
		"ref/Suite/testView.png": {Data: []byte("png")},
	}
	r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("64", ""), Scale: 1})

	got, err := r.Resolve(fsys, Key{Group: "Suite", Test: "testView"})
	require.NoError(t, err)
	assert.Equal(t, "ref/Suite/testView.png", got)
}

func TestResolve_SkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"ref64/Suite/testView.png/nested": {Data: []byte("x")},
		"ref/Suite/testView.png":          {Data: []byte("png")},
	}
	r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("64", ""), Scale: 1})

	got, err := r.Resolve(fsys, Key{Group: "Suite", Test: "testView"})
	require.NoError(t, err)
	assert.Equal(t, "ref/Suite/testView.png", got)
}

func TestResolve_NotFound(t *testing.T) {
	r := includeResolver(naming.IncludeOptionDevice, Options{ImagesDir: "ref", Suffixes: platform.NewSuffixes("64"), Scale: 1})

	_, err := r.Resolve(fstest.MapFS{}, Key{Group: "Suite", Test: "testView"})
	require.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "ref64/Suite/testView_iPhone.png")
}

// Property: one candidate per suffix, each ending in the same file name.
func TestPropertyCandidatesPerSuffix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		suffixes := platform.NewSuffixes(rapid.SliceOf(rapid.StringMatching(`[a-z0-9_]{1,4}`)).Draw(t, "suffixes")...)
		test := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,10}`).Draw(t, "test")
		r := includeResolver(naming.IncludeOptionNone, Options{ImagesDir: "ref", Suffixes: suffixes, Scale: 1})

		k := Key{Group: "Suite", Test: test}
		candidates := r.Candidates(k)
		want := suffixes.Len()
		if want == 0 {
			want = 1
		}
		assert.Len(t, candidates, want)
		for _, c := range candidates {
			assert.True(t, strings.HasSuffix(c, "/Suite/"+r.FileName(k)), "candidate %q", c)
		}
	})
}
