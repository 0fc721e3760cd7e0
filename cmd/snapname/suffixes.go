package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/snapshot/internal/platform"
)

type suffixesResult struct {
	Is64Bit    bool     `yaml:"is_64_bit"`
	Configured bool     `yaml:"configured"`
	Suffixes   []string `yaml:"suffixes"`
}

func newSuffixesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suffixes",
		Short: "Print the reference directory suffixes in probe order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := a.suffixes().Values()
			res := suffixesResult{
				Is64Bit:    platform.Is64Bit(),
				Configured: len(a.cfg.Reference.Suffixes) > 0,
				Suffixes:   values,
			}
			return a.write(cmd.OutOrStdout(), strings.Join(values, "\n"), res)
		},
	}
}
