package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/snapshot/internal/naming"
)

const (
	vocabularyAgnostic = "agnostic"
	vocabularyInclude  = "include"
)

// optionFlags holds the mutually exclusive --agnostic and --include flags.
type optionFlags struct {
	agnostic string
	include  string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.agnostic, "agnostic", "", "agnostic options: none, device, os, screen_size (comma separated)")
	cmd.Flags().StringVar(&f.include, "include", "", "include options: none, device, os, screen_size (comma separated)")
	cmd.MarkFlagsMutuallyExclusive("agnostic", "include")
}

// selection is one parsed option mask; exactly one vocabulary is set.
type selection struct {
	vocabulary string
	agnostic   naming.AgnosticOption
	include    naming.IncludeOption
}

func (s selection) String() string {
	if s.vocabulary == vocabularyAgnostic {
		return s.agnostic.String()
	}
	return s.include.String()
}

// selection picks the vocabulary from flags first, then configuration, and
// defaults to IncludeOptionNone.
func (f *optionFlags) selection(cmd *cobra.Command, a *app) (selection, error) {
	agnostic, include := a.cfg.Reference.Agnostic, a.cfg.Reference.Include
	useAgnostic := agnostic != ""
	switch {
	case cmd.Flags().Changed("agnostic"):
		agnostic, useAgnostic = f.agnostic, true
	case cmd.Flags().Changed("include"):
		include, useAgnostic = f.include, false
	}

	if useAgnostic {
		opt, err := naming.ParseAgnosticOption(agnostic)
		if err != nil {
			return selection{}, err
		}
		return selection{vocabulary: vocabularyAgnostic, agnostic: opt}, nil
	}
	opt, err := naming.ParseIncludeOption(include)
	if err != nil {
		return selection{}, err
	}
	return selection{vocabulary: vocabularyInclude, include: opt}, nil
}
