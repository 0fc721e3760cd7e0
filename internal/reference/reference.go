// Package reference locates reference images on disk for a snapshot test.
//
// A Resolver turns a test key into a normalized file name and probes one
// candidate directory per suffix, most specific first. It never reads image
// content; comparing pixels is left to the caller.
package reference

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/snapshot/internal/naming"
	"github.com/cory-johannsen/snapshot/internal/platform"
)

// ErrReferenceNotFound is returned when no candidate path exists.
var ErrReferenceNotFound = errors.New("reference image not found")

// Extension is the file extension of reference images.
const Extension = ".png"

// Key identifies one reference image.
type Key struct {
	// Group is the sub directory holding a suite's images, usually the suite name.
	Group string
	// Test is the test name.
	Test string
	// Identifier distinguishes several snapshots taken by one test.
	Identifier string
}

// Options holds the lookup settings shared by all keys.
type Options struct {
	ImagesDir string
	Suffixes  platform.Suffixes
	Scale     float64
}

// Resolver maps Keys to reference-image paths.
//
// Invariant: Resolver is read-only after construction and safe for concurrent use.
type Resolver struct {
	normalize func(string) string
	opts      Options
	logger    *zap.Logger
}

// NewIncludeResolver creates a Resolver naming files with an IncludeOption mask.
//
// Precondition: n must be non-nil.
func NewIncludeResolver(n *naming.Normalizer, option naming.IncludeOption, opts Options, logger *zap.Logger) *Resolver {
	return newResolver(func(s string) string { return n.IncludeFileName(s, option) }, opts, logger)
}

// NewAgnosticResolver creates a Resolver naming files with an AgnosticOption mask.
//
// Precondition: n must be non-nil.
func NewAgnosticResolver(n *naming.Normalizer, option naming.AgnosticOption, opts Options, logger *zap.Logger) *Resolver {
	return newResolver(func(s string) string { return n.AgnosticFileName(s, option) }, opts, logger)
}

func newResolver(normalize func(string) string, opts Options, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{normalize: normalize, opts: opts, logger: logger}
}

// FileName returns the normalized image file name for k.
//
// The identifier is appended before normalization, and the scale marker and
// extension after it, so "@2x.png" survives sanitization.
func (r *Resolver) FileName(k Key) string {
	name := k.Test
	if k.Identifier != "" {
		name += "_" + k.Identifier
	}
	name = r.normalize(name)
	if r.opts.Scale > 1 {
		name += fmt.Sprintf("@%.0fx", r.opts.Scale)
	}
	return name + Extension
}

// Directories returns the candidate directories in probe order. Each suffix
// is appended to the images directory; an empty suffix set probes the images
// directory alone.
func (r *Resolver) Directories() []string {
	suffixes := r.opts.Suffixes.Values()
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}
	dirs := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		dirs = append(dirs, r.opts.ImagesDir+s)
	}
	return dirs
}

// Candidates returns every path probed for k, in order.
func (r *Resolver) Candidates(k Key) []string {
	file := r.FileName(k)
	dirs := r.Directories()
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, path.Join(d, k.Group, file))
	}
	return out
}

// Resolve returns the first candidate for k that exists in fsys.
//
// Postcondition: Returns an existing regular file path, or an error wrapping
// ErrReferenceNotFound that lists every probed path.
func (r *Resolver) Resolve(fsys fs.FS, k Key) (string, error) {
	candidates := r.Candidates(k)
	for _, p := range candidates {
		info, err := fs.Stat(fsys, p)
		if err != nil {
			r.logger.Debug("reference candidate missing", zap.String("path", p), zap.Error(err))
			continue
		}
		if info.IsDir() {
			r.logger.Debug("reference candidate is a directory", zap.String("path", p))
			continue
		}
		r.logger.Debug("reference image resolved", zap.String("path", p))
		return p, nil
	}
	return "", fmt.Errorf("%w for %q (tried %s)", ErrReferenceNotFound, k.Test, strings.Join(candidates, ", "))
}
