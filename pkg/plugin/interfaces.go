package plugin

import "context"

// VariableStore is the capability tokenise needs from a design-variable host.
// Every call may block on the host and may fail.
type VariableStore interface {
	// Collections lists existing variable collections.
	Collections(ctx context.Context) ([]Collection, error)

	// CreateCollection creates a named collection with at least one mode.
	CreateCollection(ctx context.Context, name string) (Collection, error)

	// ColorVariables lists existing variables of colour type.
	ColorVariables(ctx context.Context) ([]Variable, error)

	// CreateColorVariable creates a named colour variable in a collection.
	CreateColorVariable(ctx context.Context, name, collectionID string) (Variable, error)

	// SetValue sets a variable's value for one mode.
	SetValue(ctx context.Context, variableID, modeID string, value ColorValue) error
}

// MetadataProvider is optionally implemented by stores that describe themselves.
type MetadataProvider interface {
	GetMetadata() PluginInfo
}
