package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/config"
	"github.com/jmylchreest/tokenise/internal/export"
	"github.com/jmylchreest/tokenise/internal/tokens"
)

type exportOptions struct {
	output  string
	selects []string
}

func newExportCommand(flags *globalFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export named colours as a token file or variables",
	}
	cmd.PersistentFlags().StringSliceVarP(&opts.selects, "select", "s", nil, "node IDs to export from (default: whole document)")

	jsonCmd := &cobra.Command{
		Use:   "json <document>",
		Short: "Write a JSON token file",
		Long: `Write the named colours of a document as a JSON token file with a top-level
"colors" object. The tailwind pattern nests shades under their colour
(blue -> 500 -> #0000FF); other patterns are flat.

Examples:
  tokenise export json --pattern tailwind -o tokens.json design.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportJSON(cmd, flags, opts, args[0])
		},
	}
	jsonCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	variablesCmd := &cobra.Command{
		Use:   "variables <document>",
		Short: "Write colour variables to a variable store",
		Long: `Create or update one colour variable per named colour in a collection of
the selected variable store. Existing variables with the same name are
updated in place. Colours written before a failure are kept.

Examples:
  tokenise export variables --store file:variables.json design.json
  tokenise export variables --store plugin:/usr/lib/tokenise/tokenise-store-file design.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportVariables(cmd, flags, opts, args[0])
		},
	}

	cmd.AddCommand(jsonCmd, variablesCmd)
	return cmd
}

// namedSamples loads a document and returns its named colours.
func namedSamples(cmd *cobra.Command, cfg config.Config, flags *globalFlags, ref string, selects []string) ([]colour.Sample, error) {
	sel, err := loadSelection(cmd, cfg, flags, ref, selects)
	if err != nil {
		return nil, err
	}
	nodes, err := sel.Selection(cmd.Context())
	if err != nil {
		return nil, err
	}
	return tokens.FromNodes(nodes, cfg.NamingOptions())
}

func runExportJSON(cmd *cobra.Command, flags *globalFlags, opts *exportOptions, ref string) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	samples, err := namedSamples(cmd, cfg, flags, ref, opts.selects)
	if errors.Is(err, tokens.ErrNoSelection) {
		status(cmd, flags, "No nodes selected.")
		return nil
	}
	if err != nil {
		return err
	}

	data, err := export.BuildJSON(samples, cfg.Pattern)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		status(cmd, flags, "Wrote %d tokens to %s", len(samples), opts.output)
	}
	return nil
}

func runExportVariables(cmd *cobra.Command, flags *globalFlags, opts *exportOptions, ref string) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, flags)

	samples, err := namedSamples(cmd, cfg, flags, ref, opts.selects)
	if errors.Is(err, tokens.ErrNoSelection) {
		status(cmd, flags, "No nodes selected.")
		return nil
	}
	if err != nil {
		return err
	}

	s, closeStore, err := openStore(cmd.Context(), cfg, flags, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	count, err := export.ExportVariables(cmd.Context(), s, samples, export.ExportOptions{
		Collection: cfg.Collection,
		Logger:     logger.Named("export"),
	})
	if err != nil {
		return err
	}

	status(cmd, flags, "Exported %d colour variables to %q (%s)", count, cfg.Collection, cfg.Store)
	return nil
}
