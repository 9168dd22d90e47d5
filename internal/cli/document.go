package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokenise/internal/config"
	"github.com/jmylchreest/tokenise/internal/plugin/executor"
	"github.com/jmylchreest/tokenise/internal/source"
	"github.com/jmylchreest/tokenise/internal/store"
	"github.com/jmylchreest/tokenise/internal/tree"
)

// documentSelection selects nodes from a loaded document, optionally
// narrowed to node IDs.
type documentSelection struct {
	doc *tree.Document
	ids []string
}

// Selection implements panel.Selector.
func (d documentSelection) Selection(context.Context) ([]tree.Node, error) {
	if len(d.ids) == 0 {
		return d.doc.Nodes(), nil
	}
	return d.doc.Find(d.ids...)
}

// loadSelection loads the document ref names and wraps it as a selection.
func loadSelection(cmd *cobra.Command, cfg config.Config, flags *globalFlags, ref string, ids []string) (documentSelection, error) {
	loader, err := source.NewLoader(source.Options{
		FigmaToken: cfg.FigmaToken,
		CacheDir:   cfg.CacheDir,
		NoCache:    flags.noCache,
		Stdin:      cmd.InOrStdin(),
		Logger:     newLogger(cmd, flags).Named("source"),
	})
	if err != nil {
		return documentSelection{}, err
	}

	parsed, err := source.ParseReference(ref)
	if err != nil {
		return documentSelection{}, fmt.Errorf("invalid document reference: %w", err)
	}
	doc, err := loader.LoadReference(cmd.Context(), parsed)
	if err != nil {
		return documentSelection{}, fmt.Errorf("failed to load document: %w", err)
	}

	// Figma node requests already return only the selected nodes.
	if parsed.Kind == source.KindFigma && len(parsed.IDs) > 0 && len(ids) == 0 {
		return documentSelection{doc: doc}, nil
	}
	return documentSelection{doc: doc, ids: splitList(ids)}, nil
}

// splitList flattens comma-separated flag values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// openStore opens the variable store cfg selects. The returned function
// releases it.
func openStore(ctx context.Context, cfg config.Config, flags *globalFlags, logger hclog.Logger) (store.Store, func(), error) {
	switch kind, arg := cfg.StoreKind(); kind {
	case "memory":
		return store.NewMemory(), func() {}, nil
	case "file":
		f, err := store.OpenFile(arg)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	case "plugin":
		p := executor.New(arg, executor.WithVerbose(flags.verbose), executor.WithLogger(logger.Named("executor")))
		info, err := p.Info(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to query store plugin: %w", err)
		}
		logger.Debug("using store plugin", "name", info.Name, "version", info.Version, "protocol", info.ProtocolVersion)
		return p, p.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
