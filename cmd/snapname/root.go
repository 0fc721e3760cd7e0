package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/snapshot/internal/config"
	"github.com/cory-johannsen/snapshot/internal/hostenv"
	"github.com/cory-johannsen/snapshot/internal/naming"
	"github.com/cory-johannsen/snapshot/internal/observability"
	"github.com/cory-johannsen/snapshot/internal/platform"
)

// app carries state shared by all subcommands. env may be preset by tests;
// otherwise it is built from configuration.
type app struct {
	configPath string
	output     string

	cfg        config.Config
	logger     *zap.Logger
	env        naming.Environment
	normalizer *naming.Normalizer
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapname",
		Short: "Compute snapshot reference-image file names",
		Long: `snapname prints the normalized file names used for snapshot test
reference images and locates existing reference images on disk.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init(cmd.Name()) },
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text or yaml")

	cmd.AddCommand(newNameCmd(a))
	cmd.AddCommand(newSuffixesCmd(a))
	cmd.AddCommand(newResolveCmd(a))

	return cmd
}

func (a *app) init(command string) error {
	start := time.Now()

	if a.output != "text" && a.output != "yaml" {
		return fmt.Errorf("--output must be one of [text, yaml], got %q", a.output)
	}

	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.Default()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a.logger, err = observability.NewLogger(a.cfg.Logging, command)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	if a.env == nil {
		a.env = hostenv.New(a.cfg.Environment, a.logger)
	}
	a.normalizer = naming.NewNormalizer(a.env, a.logger)

	a.logger.Debug("snapname initialized",
		zap.String("config", a.configPath),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// suffixes returns the configured suffix set, or the platform defaults when
// none is configured.
func (a *app) suffixes() platform.Suffixes {
	if len(a.cfg.Reference.Suffixes) > 0 {
		return platform.NewSuffixes(a.cfg.Reference.Suffixes...)
	}
	return platform.DefaultSuffixes()
}

// write prints text in text mode and v as YAML otherwise.
func (a *app) write(w io.Writer, text string, v any) error {
	if a.output == "text" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
