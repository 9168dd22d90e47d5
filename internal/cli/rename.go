package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokenise/internal/panel"
	"github.com/jmylchreest/tokenise/internal/tokens"
)

type renameOptions struct {
	format string
	output string
}

func newRenameCommand(flags *globalFlags) *cobra.Command {
	opts := &renameOptions{}

	cmd := &cobra.Command{
		Use:   "rename [colors.json]",
		Short: "Re-apply naming to a list of colours",
		Long: `Read a JSON array of colours, as written by "extract --format colors",
and name them again with a different pattern. Colours may give r, g and b
components or only a hex value. Reads standard input when no file is given.

Examples:
  tokenise extract -f colors design.json | tokenise rename --pattern antd
  tokenise rename --pattern custom --prefix brand -f tokens colors.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runRename(cmd, flags, opts, input)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatColors, "output format (table, colors, tokens)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runRename(cmd *cobra.Command, flags *globalFlags, opts *renameOptions, input string) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, input)
	if err != nil {
		return err
	}
	samples, err := panel.DecodeColors(data)
	if err != nil {
		return err
	}

	named, err := tokens.Rename(samples, cfg.NamingOptions())
	if err != nil {
		return err
	}
	newLogger(cmd, flags).Debug("renamed colours", "count", len(named), "pattern", cfg.Pattern)

	return writeSamples(cmd, cfg.Pattern, opts.format, opts.output, false, named)
}
