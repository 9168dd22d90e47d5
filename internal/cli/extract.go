package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/export"
	"github.com/jmylchreest/tokenise/internal/naming"
	"github.com/jmylchreest/tokenise/internal/panel"
	"github.com/jmylchreest/tokenise/internal/tokens"
)

// Output formats for extract and rename.
const (
	formatTable  = "table"
	formatColors = "colors"
	formatTokens = "tokens"
)

type extractOptions struct {
	format  string
	output  string
	selects []string
	preview bool
}

func newExtractCommand(flags *globalFlags) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <document>",
		Short: "Extract and name the colours used in a design document",
		Long: `Extract the solid colours used as fills, strokes and text colours in a
design document, keep one per hex value and name them.

The document may be a Figma JSON file (optionally .gz or .xz compressed),
"-" for standard input, a figma://<fileKey>?ids=1:2 reference, a
figma.com file link or an HTTPS URL.

Examples:
  # Name colours with the default material pattern
  tokenise extract design.json

  # Tailwind names with swatches in the terminal
  tokenise extract --pattern tailwind --preview design.json

  # Only the colours below two nodes
  tokenise extract --select 1:2,3:4 design.json.xz

  # Fetch from Figma and print the colour list as JSON
  FIGMA_TOKEN=... tokenise extract -f colors figma://AbC123?ids=1:2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, colors, tokens)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringSliceVarP(&opts.selects, "select", "s", nil, "node IDs to extract from (default: whole document)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches in the table")

	return cmd
}

func runExtract(cmd *cobra.Command, flags *globalFlags, opts *extractOptions, ref string) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, flags)

	sel, err := loadSelection(cmd, cfg, flags, ref, opts.selects)
	if err != nil {
		return err
	}
	nodes, err := sel.Selection(cmd.Context())
	if err != nil {
		return err
	}

	samples, err := tokens.FromNodes(nodes, cfg.NamingOptions())
	if errors.Is(err, tokens.ErrNoSelection) {
		status(cmd, flags, "No nodes selected.")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("extracted colours", "count", len(samples), "pattern", cfg.Pattern)

	return writeSamples(cmd, cfg.Pattern, opts.format, opts.output, opts.preview, samples)
}

// writeSamples renders named samples in the requested format.
func writeSamples(cmd *cobra.Command, pattern naming.Pattern, format, output string, preview bool, samples []colour.Sample) error {
	var data []byte
	var err error

	switch format {
	case formatTable:
		data = []byte(renderTable(samples, preview && output == "" && isTerminal()))
	case formatColors:
		data, err = panel.EncodeColors(samples)
	case formatTokens:
		data, err = export.BuildJSON(samples, pattern)
	default:
		return fmt.Errorf("unknown format %q (valid: %s, %s, %s)", format, formatTable, formatColors, formatTokens)
	}
	if err != nil {
		return err
	}

	return writeOutput(cmd, output, data)
}

// renderTable lists samples with an optional swatch column.
func renderTable(samples []colour.Sample, preview bool) string {
	headers := []string{"TOKEN", "HEX", "SOURCE", "ROLE"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	table := NewTable(headers...)
	for _, s := range samples {
		row := []string{s.TokenName, s.Hex, string(s.Source), string(s.Role())}
		if preview {
			row = append(row, colour.ColourPreview(s, 8))
		}
		table.AddRow(row...)
	}
	return table.Render()
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 - File descriptors fit in int
}
