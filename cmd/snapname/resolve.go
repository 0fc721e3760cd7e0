package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/snapshot/internal/reference"
)

type resolveResult struct {
	Path       string   `yaml:"path"`
	Found      bool     `yaml:"found"`
	Candidates []string `yaml:"candidates"`
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		flags      optionFlags
		group      string
		identifier string
	)
	cmd := &cobra.Command{
		Use:   "resolve <test-name>",
		Short: "Locate the reference image for a test",
		Long: `resolve probes the reference directory once per suffix, most specific
first, and prints the first reference image that exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.selection(cmd, a)
			if err != nil {
				return err
			}

			fsys, root, dir, err := dirFS(a.cfg.Reference.ImagesDir)
			if err != nil {
				return err
			}
			opts := reference.Options{
				ImagesDir: dir,
				Suffixes:  a.suffixes(),
				Scale:     a.cfg.Reference.Scale,
			}
			var r *reference.Resolver
			if sel.vocabulary == vocabularyAgnostic {
				r = reference.NewAgnosticResolver(a.normalizer, sel.agnostic, opts, a.logger)
			} else {
				r = reference.NewIncludeResolver(a.normalizer, sel.include, opts, a.logger)
			}

			key := reference.Key{Group: group, Test: args[0], Identifier: identifier}
			var candidates []string
			for _, c := range r.Candidates(key) {
				candidates = append(candidates, hostPath(root, c))
			}

			path, err := r.Resolve(fsys, key)
			if err != nil {
				if a.output == "yaml" && errors.Is(err, reference.ErrReferenceNotFound) {
					a.logger.Warn("reference image not found", zap.String("test", key.Test))
					return a.write(cmd.OutOrStdout(), "", resolveResult{Candidates: candidates})
				}
				return err
			}
			path = hostPath(root, path)
			return a.write(cmd.OutOrStdout(), path, resolveResult{
				Path:       path,
				Found:      true,
				Candidates: candidates,
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&group, "group", "", "sub directory holding the suite's images")
	cmd.Flags().StringVar(&identifier, "identifier", "", "snapshot identifier within the test")
	return cmd
}

// dirFS roots a file system at the volume holding imagesDir so that it can be
// probed through fs.FS. It returns the file system, its root on the host and
// imagesDir relative to that root in slash form. Relative directories are made
// absolute first, since fs.FS paths cannot climb above their root with "..".
func dirFS(imagesDir string) (fs.FS, string, string, error) {
	abs, err := filepath.Abs(imagesDir)
	if err != nil {
		return nil, "", "", fmt.Errorf("resolving images directory %q: %w", imagesDir, err)
	}
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel := strings.TrimPrefix(filepath.ToSlash(abs[len(root)-1:]), "/")
	return os.DirFS(root), root, rel, nil
}

func hostPath(root, p string) string {
	return filepath.Join(root, filepath.FromSlash(p))
}
