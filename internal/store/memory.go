package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// DefaultModeName is the name of the mode every new collection starts with.
const DefaultModeName = "Mode 1"

// state is the serialisable content of a store.
type state struct {
	NextID      int                              `json:"next_id"`
	Collections []Collection                     `json:"collections"`
	Variables   []Variable                       `json:"variables"`
	Values      map[string]map[string]ColorValue `json:"values"`
}

func newState() state {
	return state{Values: make(map[string]map[string]ColorValue)}
}

func (s *state) nextID() int {
	s.NextID++
	return s.NextID
}

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu sync.Mutex
	st state
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{st: newState()}
}

// Collections implements Store.
func (m *Memory) Collections(ctx context.Context) ([]Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.st.Collections), nil
}

// CreateCollection implements Store. The new collection has one mode.
func (m *Memory) CreateCollection(ctx context.Context, name string) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return Collection{}, err
	}
	if name == "" {
		return Collection{}, fmt.Errorf("collection name cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.st.nextID()
	c := Collection{
		ID:    fmt.Sprintf("VariableCollectionId:%d", id),
		Name:  name,
		Modes: []Mode{{ID: fmt.Sprintf("%d:0", id), Name: DefaultModeName}},
	}
	m.st.Collections = append(m.st.Collections, c)
	return c, nil
}

// ColorVariables implements Store.
func (m *Memory) ColorVariables(ctx context.Context) ([]Variable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.st.Variables), nil
}

// CreateColorVariable implements Store.
func (m *Memory) CreateColorVariable(ctx context.Context, name, collectionID string) (Variable, error) {
	if err := ctx.Err(); err != nil {
		return Variable{}, err
	}
	if name == "" {
		return Variable{}, fmt.Errorf("variable name cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.st.collection(collectionID); !ok {
		return Variable{}, fmt.Errorf("collection %s: %w", collectionID, ErrNotFound)
	}

	v := Variable{
		ID:           fmt.Sprintf("VariableID:%d", m.st.nextID()),
		Name:         name,
		CollectionID: collectionID,
		Type:         plugin.VariableTypeColor,
	}
	m.st.Variables = append(m.st.Variables, v)
	return v, nil
}

// SetValue implements Store.
func (m *Memory) SetValue(ctx context.Context, variableID, modeID string, value ColorValue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.st.variable(variableID)
	if !ok {
		return fmt.Errorf("variable %s: %w", variableID, ErrNotFound)
	}
	c, _ := m.st.collection(v.CollectionID)
	if !slices.ContainsFunc(c.Modes, func(md Mode) bool { return md.ID == modeID }) {
		return fmt.Errorf("mode %s in collection %s: %w", modeID, c.Name, ErrNotFound)
	}

	if m.st.Values[variableID] == nil {
		m.st.Values[variableID] = make(map[string]ColorValue)
	}
	m.st.Values[variableID][modeID] = value
	return nil
}

// Value returns the stored value of a variable for a mode.
func (m *Memory) Value(variableID, modeID string) (ColorValue, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.st.Values[variableID][modeID]
	return v, ok
}

// GetMetadata implements plugin.MetadataProvider.
func (m *Memory) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "memory",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "In-memory variable store",
	}
}

func (s *state) collection(id string) (Collection, bool) {
	for _, c := range s.Collections {
		if c.ID == id {
			return c, true
		}
	}
	return Collection{}, false
}

func (s *state) variable(id string) (Variable, bool) {
	for _, v := range s.Variables {
		if v.ID == id {
			return v, true
		}
	}
	return Variable{}, false
}
