package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrNodeNotFound is returned when a selected node ID is not in the document.
var ErrNodeNotFound = errors.New("node not found")

// DocumentNode is a node decoded from a Figma-style JSON document.
// A nil paint or children slice means the node does not have that property.
type DocumentNode struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name,omitempty"`
	NodeType     string          `json:"type"`
	FillPaints   []Paint         `json:"fills,omitempty"`
	StrokePaints []Paint         `json:"strokes,omitempty"`
	Kids         []*DocumentNode `json:"children,omitempty"`
}

// Type implements Node.
func (n *DocumentNode) Type() string {
	return n.NodeType
}

// Fills implements Node.
func (n *DocumentNode) Fills() ([]Paint, bool) {
	return n.FillPaints, n.FillPaints != nil
}

// Strokes implements Node.
func (n *DocumentNode) Strokes() ([]Paint, bool) {
	return n.StrokePaints, n.StrokePaints != nil
}

// Children implements Node.
func (n *DocumentNode) Children() ([]Node, bool) {
	if n.Kids == nil {
		return nil, false
	}
	return toNodes(n.Kids), true
}

// Walk visits n and its descendants pre-order until fn returns false.
func (n *DocumentNode) Walk(fn func(*DocumentNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, kid := range n.Kids {
		if kid != nil && !kid.Walk(fn) {
			return false
		}
	}
	return true
}

// Document is a decoded design document.
type Document struct {
	Name  string
	Roots []*DocumentNode
}

// figmaFile matches the Figma REST file and file-nodes responses.
type figmaFile struct {
	Name     string        `json:"name"`
	Document *DocumentNode `json:"document"`
	Nodes    map[string]*struct {
		Document *DocumentNode `json:"document"`
	} `json:"nodes"`
}

// Decode reads a document in one of three shapes: a Figma file response
// ({"document": ...}), whose pages become the roots; a Figma nodes response
// ({"nodes": {id: {"document": ...}}}), whose nodes become the roots in ID
// order; or a bare JSON array of nodes.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var roots []*DocumentNode
		if err := json.Unmarshal(trimmed, &roots); err != nil {
			return nil, fmt.Errorf("failed to parse node list: %w", err)
		}
		return &Document{Roots: roots}, nil
	}

	var file figmaFile
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{Name: file.Name}
	switch {
	case file.Document != nil:
		if file.Document.Kids != nil {
			doc.Roots = file.Document.Kids
		} else {
			doc.Roots = []*DocumentNode{file.Document}
		}
	case file.Nodes != nil:
		ids := make([]string, 0, len(file.Nodes))
		for id := range file.Nodes {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			if entry := file.Nodes[id]; entry != nil && entry.Document != nil {
				doc.Roots = append(doc.Roots, entry.Document)
			}
		}
	default:
		return nil, fmt.Errorf("document has neither \"document\" nor \"nodes\"")
	}

	return doc, nil
}

// Nodes returns the document roots as Nodes.
func (d *Document) Nodes() []Node {
	return toNodes(d.Roots)
}

// Find returns the nodes with the given IDs, in the order requested.
func (d *Document) Find(ids ...string) ([]Node, error) {
	found := make([]Node, 0, len(ids))
	for _, id := range ids {
		var match *DocumentNode
		for _, root := range d.Roots {
			if root == nil {
				continue
			}
			root.Walk(func(n *DocumentNode) bool {
				if n.ID == id {
					match = n
					return false
				}
				return true
			})
			if match != nil {
				break
			}
		}
		if match == nil {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
		}
		found = append(found, match)
	}
	return found, nil
}

func toNodes(kids []*DocumentNode) []Node {
	nodes := make([]Node, 0, len(kids))
	for _, k := range kids {
		if k != nil {
			nodes = append(nodes, k)
		}
	}
	return nodes
}
