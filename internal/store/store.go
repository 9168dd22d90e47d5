// Package store provides variable stores that named colours are exported to.
package store

import (
	"context"
	"errors"

	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// ErrNotFound is returned when a collection, variable or mode does not exist.
var ErrNotFound = errors.New("not found")

// Store is the variable-store capability. It is the same contract external
// plugins implement.
type Store = plugin.VariableStore

type (
	Collection = plugin.Collection
	Mode       = plugin.Mode
	Variable   = plugin.Variable
	ColorValue = plugin.ColorValue
)

// FindCollection returns the first collection with the given name.
func FindCollection(ctx context.Context, s Store, name string) (Collection, bool, error) {
	collections, err := s.Collections(ctx)
	if err != nil {
		return Collection{}, false, err
	}
	for _, c := range collections {
		if c.Name == name {
			return c, true, nil
		}
	}
	return Collection{}, false, nil
}

// FindColorVariable returns the colour variable with the given name in a collection.
func FindColorVariable(ctx context.Context, s Store, name, collectionID string) (Variable, bool, error) {
	variables, err := s.ColorVariables(ctx)
	if err != nil {
		return Variable{}, false, err
	}
	for _, v := range variables {
		if v.Name == name && v.CollectionID == collectionID {
			return v, true, nil
		}
	}
	return Variable{}, false, nil
}
