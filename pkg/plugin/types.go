package plugin

// VariableTypeColor is the only variable type tokenise creates.
const VariableTypeColor = "COLOR"

// Mode is one value column of a collection (e.g. "Light", "Dark").
type Mode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Collection is a named group of design variables.
type Collection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Modes []Mode `json:"modes"`
}

// DefaultModeID returns the ID of the collection's first mode, or "" if it has none.
func (c Collection) DefaultModeID() string {
	if len(c.Modes) == 0 {
		return ""
	}
	return c.Modes[0].ID
}

// Variable is a single design variable.
type Variable struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CollectionID string `json:"collection_id"`
	Type         string `json:"type"`
}

// ColorValue is a normalised RGBA colour value.
type ColorValue struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// CreateVariableArgs carries the arguments of VariableStore.CreateColorVariable over RPC.
type CreateVariableArgs struct {
	Name         string
	CollectionID string
}

// SetValueArgs carries the arguments of VariableStore.SetValue over RPC.
type SetValueArgs struct {
	VariableID string
	ModeID     string
	Value      ColorValue
}
