package export

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/store"
)

// DefaultCollection is the collection named colours are exported into.
const DefaultCollection = "Color Tokens"

// ExportOptions configures ExportVariables.
type ExportOptions struct {
	// Collection is the collection name. Empty means DefaultCollection.
	Collection string

	// Logger receives progress. Nil discards it.
	Logger hclog.Logger
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Collection == "" {
		o.Collection = DefaultCollection
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	return o
}

// PartialExportError reports a failed export together with how far it got.
// Colours written before the failure are left in place.
type PartialExportError struct {
	Exported int
	Total    int
	Token    string
	Err      error
}

// Error implements the error interface.
func (e *PartialExportError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("export failed after %d of %d colours: %v", e.Exported, e.Total, e.Err)
	}
	return fmt.Sprintf("export failed at %s after %d of %d colours: %v", e.Token, e.Exported, e.Total, e.Err)
}

// Unwrap returns the underlying store error.
func (e *PartialExportError) Unwrap() error {
	return e.Err
}

// ExportVariables writes every named sample to s as a colour variable in one
// collection, creating the collection and variables as needed and setting
// each value on the collection's first mode. Colours are written one at a
// time in order; the first failure stops the export and is returned as a
// *PartialExportError alongside the number of colours written.
func ExportVariables(ctx context.Context, s store.Store, samples []colour.Sample, opts ExportOptions) (int, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("collection", opts.Collection)

	fail := func(exported int, token string, err error) (int, error) {
		return exported, &PartialExportError{Exported: exported, Total: len(samples), Token: token, Err: err}
	}

	collection, err := ensureCollection(ctx, s, opts.Collection)
	if err != nil {
		return fail(0, "", err)
	}
	modeID := collection.DefaultModeID()
	if modeID == "" {
		return fail(0, "", fmt.Errorf("collection %q has no modes", collection.Name))
	}
	log.Debug("using collection", "id", collection.ID, "mode", modeID)

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return fail(i, sample.TokenName, err)
		}
		if sample.TokenName == "" {
			return fail(i, sample.Hex, fmt.Errorf("colour %s has no token name", sample.Hex))
		}

		variable, err := ensureVariable(ctx, s, sample.TokenName, collection.ID)
		if err != nil {
			return fail(i, sample.TokenName, err)
		}

		value := store.ColorValue{R: sample.R, G: sample.G, B: sample.B, A: sample.A}
		if err := s.SetValue(ctx, variable.ID, modeID, value); err != nil {
			return fail(i, sample.TokenName, fmt.Errorf("failed to set value: %w", err))
		}
		log.Debug("exported variable", "name", sample.TokenName, "hex", sample.Hex, "id", variable.ID)
	}

	log.Info("exported variables", "count", len(samples))
	return len(samples), nil
}

func ensureCollection(ctx context.Context, s store.Store, name string) (store.Collection, error) {
	c, ok, err := store.FindCollection(ctx, s, name)
	if err != nil {
		return store.Collection{}, fmt.Errorf("failed to list collections: %w", err)
	}
	if ok {
		return c, nil
	}
	c, err = s.CreateCollection(ctx, name)
	if err != nil {
		return store.Collection{}, fmt.Errorf("failed to create collection: %w", err)
	}
	return c, nil
}

func ensureVariable(ctx context.Context, s store.Store, name, collectionID string) (store.Variable, error) {
	v, ok, err := store.FindColorVariable(ctx, s, name, collectionID)
	if err != nil {
		return store.Variable{}, fmt.Errorf("failed to list variables: %w", err)
	}
	if ok {
		return v, nil
	}
	v, err = s.CreateColorVariable(ctx, name, collectionID)
	if err != nil {
		return store.Variable{}, fmt.Errorf("failed to create variable: %w", err)
	}
	return v, nil
}
