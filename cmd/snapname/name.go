package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/snapshot/internal/naming"
)

type nameResult struct {
	Input       string            `yaml:"input"`
	Vocabulary  string            `yaml:"vocabulary"`
	Options     string            `yaml:"options"`
	Name        string            `yaml:"name"`
	Environment naming.Descriptor `yaml:"environment"`
}

func newNameCmd(a *app) *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "name <file-name>",
		Short: "Print the normalized reference-image name",
		Example: `  # Sanitize only
  snapname name "My Test"

  # Append device model and OS version
  snapname name --include device,os "My Test"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.selection(cmd, a)
			if err != nil {
				return err
			}

			var name string
			if sel.vocabulary == vocabularyAgnostic {
				name = a.normalizer.AgnosticFileName(args[0], sel.agnostic)
			} else {
				name = a.normalizer.IncludeFileName(args[0], sel.include)
			}

			res := nameResult{
				Input:      args[0],
				Vocabulary: sel.vocabulary,
				Options:    sel.String(),
				Name:       name,
			}
			if a.output == "yaml" {
				res.Environment = a.normalizer.Describe()
			}
			return a.write(cmd.OutOrStdout(), name, res)
		},
	}
	flags.register(cmd)
	return cmd
}
