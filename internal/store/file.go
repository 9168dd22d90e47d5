package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// File is a Store persisted as a JSON file. Every successful mutation is
// written back to disk before the call returns.
type File struct {
	mem  *Memory
	path string
}

// OpenFile loads a file store from path, starting empty if the file does not exist.
func OpenFile(path string) (*File, error) {
	f := &File{mem: NewMemory(), path: path}

	data, err := os.ReadFile(path) // #nosec G304 - Store path is chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read variable store: %w", err)
	}

	st := newState()
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse variable store %s: %w", path, err)
	}
	if st.Values == nil {
		st.Values = make(map[string]map[string]ColorValue)
	}
	f.mem.st = st

	return f, nil
}

// Path returns the file the store is persisted to.
func (f *File) Path() string {
	return f.path
}

// save writes the current state to disk.
func (f *File) save() error {
	f.mem.mu.Lock()
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(f.mem.st)
	f.mem.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal variable store: %w", err)
	}

	if err := os.WriteFile(f.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write variable store: %w", err)
	}
	return nil
}

// Collections implements Store.
func (f *File) Collections(ctx context.Context) ([]Collection, error) {
	return f.mem.Collections(ctx)
}

// CreateCollection implements Store.
func (f *File) CreateCollection(ctx context.Context, name string) (Collection, error) {
	c, err := f.mem.CreateCollection(ctx, name)
	if err != nil {
		return Collection{}, err
	}
	return c, f.save()
}

// ColorVariables implements Store.
func (f *File) ColorVariables(ctx context.Context) ([]Variable, error) {
	return f.mem.ColorVariables(ctx)
}

// CreateColorVariable implements Store.
func (f *File) CreateColorVariable(ctx context.Context, name, collectionID string) (Variable, error) {
	v, err := f.mem.CreateColorVariable(ctx, name, collectionID)
	if err != nil {
		return Variable{}, err
	}
	return v, f.save()
}

// SetValue implements Store.
func (f *File) SetValue(ctx context.Context, variableID, modeID string, value ColorValue) error {
	if err := f.mem.SetValue(ctx, variableID, modeID, value); err != nil {
		return err
	}
	return f.save()
}

// Value returns the stored value of a variable for a mode.
func (f *File) Value(variableID, modeID string) (ColorValue, bool) {
	return f.mem.Value(variableID, modeID)
}

// GetMetadata implements plugin.MetadataProvider.
func (f *File) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "file",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "JSON file variable store (" + f.path + ")",
	}
}
