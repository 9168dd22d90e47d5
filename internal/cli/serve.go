package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokenise/internal/panel"
)

type serveOptions struct {
	selects []string
}

func newServeCommand(flags *globalFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve <document>",
		Short: "Answer panel messages on standard input and output",
		Long: `Run a panel session against a document. Requests are read from standard
input and replies written to standard output, one JSON object per line:

  {"type":"extract-colors","pattern":"tailwind"}
  {"type":"apply-naming","colors":[...],"pattern":"antd"}
  {"type":"export-variables","colors":[...],"pattern":"material"}
  {"type":"export-json","colors":[...],"pattern":"tailwind"}
  {"type":"close"}

The selection is the whole document, or the nodes named by --select.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.selects, "select", "s", nil, "node IDs that form the selection (default: whole document)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, opts *serveOptions, ref string) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, flags)

	sel, err := loadSelection(cmd, cfg, flags, ref, opts.selects)
	if err != nil {
		return err
	}

	s, closeStore, err := openStore(cmd.Context(), cfg, flags, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := panel.NewHandler(sel,
		panel.WithStore(s),
		panel.WithCollection(cfg.Collection),
		panel.WithLogger(logger.Named("panel")),
	)

	logger.Debug("panel session started", "document", ref, "store", cfg.Store)
	return panel.NewSession(handler, cmd.InOrStdin(), cmd.OutOrStdout(), logger.Named("session")).Run(cmd.Context())
}
