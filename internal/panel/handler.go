package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/export"
	"github.com/jmylchreest/tokenise/internal/naming"
	"github.com/jmylchreest/tokenise/internal/store"
	"github.com/jmylchreest/tokenise/internal/tokens"
	"github.com/jmylchreest/tokenise/internal/tree"
)

// Selector returns the nodes the user currently has selected.
type Selector interface {
	Selection(ctx context.Context) ([]tree.Node, error)
}

// SelectorFunc adapts a function to a Selector.
type SelectorFunc func(ctx context.Context) ([]tree.Node, error)

// Selection implements Selector.
func (f SelectorFunc) Selection(ctx context.Context) ([]tree.Node, error) {
	return f(ctx)
}

// Handler answers panel requests.
type Handler struct {
	selector   Selector
	store      store.Store
	collection string
	logger     hclog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStore sets the variable store export-variables requests write to.
func WithStore(s store.Store) HandlerOption {
	return func(h *Handler) {
		h.store = s
	}
}

// WithCollection sets the collection used when a request names none.
func WithCollection(name string) HandlerOption {
	return func(h *Handler) {
		h.collection = name
	}
}

// WithLogger sets the handler's logger.
func WithLogger(logger hclog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler returns a handler reading the selection from sel.
func NewHandler(sel Selector, opts ...HandlerOption) *Handler {
	h := &Handler{
		selector:   sel,
		collection: export.DefaultCollection,
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle answers one request. Close has no reply and returns nil.
func (h *Handler) Handle(ctx context.Context, req Request) Reply {
	h.logger.Debug("handling request", "type", req.RequestType())

	switch req := req.(type) {
	case ExtractColors:
		return h.extract(ctx, req)
	case ApplyNaming:
		return h.rename(req)
	case ExportVariables:
		return h.exportVariables(ctx, req)
	case ExportJSON:
		return h.exportJSON(req)
	case Close:
		return nil
	default:
		return Error{Message: fmt.Sprintf("%v: %s", ErrUnknownMessage, req.RequestType())}
	}
}

func (h *Handler) extract(ctx context.Context, req ExtractColors) Reply {
	nodes, err := h.selector.Selection(ctx)
	if err != nil {
		h.logger.Error("failed to read selection", "error", err)
		return Error{Message: fmt.Sprintf("failed to read selection: %v", err)}
	}

	samples, err := tokens.FromNodes(nodes, naming.Options{Pattern: req.Pattern, CustomPrefix: req.CustomPrefix})
	if errors.Is(err, tokens.ErrNoSelection) {
		return NoSelection{}
	}
	if err != nil {
		return Error{Message: err.Error()}
	}

	h.logger.Debug("extracted colours", "count", len(samples), "pattern", req.Pattern)
	return ColorsExtracted{Colors: samples, Source: "extract"}
}

func (h *Handler) rename(req ApplyNaming) Reply {
	samples, err := tokens.Rename(req.Colors, naming.Options{Pattern: req.Pattern, CustomPrefix: req.CustomPrefix})
	if err != nil {
		return Error{Message: err.Error()}
	}
	return ColorsExtracted{Colors: samples, Source: "rename"}
}

func (h *Handler) exportVariables(ctx context.Context, req ExportVariables) Reply {
	if h.store == nil {
		return ExportError{Message: "no variable store configured"}
	}

	samples, err := ensureNamed(req.Colors, req.Pattern)
	if err != nil {
		return ExportError{Message: err.Error()}
	}

	collection := req.Collection
	if collection == "" {
		collection = h.collection
	}
	count, err := export.ExportVariables(ctx, h.store, samples, export.ExportOptions{
		Collection: collection,
		Logger:     h.logger,
	})
	if err != nil {
		h.logger.Error("variable export failed", "exported", count, "error", err)
		return ExportError{Message: err.Error()}
	}
	return ExportDone{Target: "variables", Count: count}
}

func (h *Handler) exportJSON(req ExportJSON) Reply {
	samples, err := ensureNamed(req.Colors, req.Pattern)
	if err != nil {
		return Error{Message: err.Error()}
	}
	data, err := export.BuildJSON(samples, req.Pattern)
	if err != nil {
		return Error{Message: err.Error()}
	}
	return JSONReady{JSON: string(data)}
}

// ensureNamed names samples with pattern when any of them lacks a token name.
func ensureNamed(samples []colour.Sample, pattern naming.Pattern) ([]colour.Sample, error) {
	for _, s := range samples {
		if s.TokenName == "" {
			return naming.Apply(samples, naming.Options{Pattern: pattern})
		}
	}
	return samples, nil
}
