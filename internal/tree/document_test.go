package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fileJSON = `{
  "name": "Brand kit",
  "document": {
    "id": "0:0",
    "type": "DOCUMENT",
    "children": [
      {
        "id": "1:1",
        "type": "CANVAS",
        "children": [
          {
            "id": "1:2",
            "type": "FRAME",
            "fills": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 1, "a": 1}}],
            "strokes": [],
            "children": [
              {
                "id": "1:3",
                "type": "TEXT",
                "fills": [{"type": "SOLID", "opacity": 0.5, "color": {"r": 1, "g": 1, "b": 1, "a": 1}}]
              }
            ]
          },
          {
            "id": "1:4",
            "type": "RECTANGLE",
            "fills": [
              {"type": "GRADIENT_LINEAR"},
              {"type": "SOLID", "visible": false, "color": {"r": 1, "g": 0, "b": 0}}
            ],
            "strokes": [{"type": "SOLID", "color": {"r": 0, "g": 1, "b": 0}}]
          }
        ]
      }
    ]
  }
}`

func TestDecodeFile(t *testing.T) {
	doc, err := Decode(strings.NewReader(fileJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Name != "Brand kit" {
		t.Errorf("Name = %q, want %q", doc.Name, "Brand kit")
	}
	if len(doc.Roots) != 1 || doc.Roots[0].ID != "1:1" {
		t.Fatalf("Roots = %+v, want the single page", doc.Roots)
	}

	got := hexes(Extract(doc.Nodes()))
	want := []string{"#0000FF/fill", "#FFFFFF/text", "#00FF00/stroke"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract(doc) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEmptyStrokesIsPresent(t *testing.T) {
	doc, err := Decode(strings.NewReader(fileJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	nodes, err := doc.Find("1:2")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if _, ok := nodes[0].Strokes(); !ok {
		t.Error("Strokes() ok = false for an empty strokes list, want true")
	}
	if _, ok := nodes[0].Children(); !ok {
		t.Error("Children() ok = false, want true")
	}
}

func TestDecodeNodesResponse(t *testing.T) {
	const nodesJSON = `{
	  "name": "Brand kit",
	  "nodes": {
	    "2:1": {"document": {"id": "2:1", "type": "FRAME", "fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}}]}},
	    "1:9": {"document": {"id": "1:9", "type": "FRAME", "fills": [{"type": "SOLID", "color": {"r": 0, "g": 1, "b": 0}}]}}
	  }
	}`

	doc, err := Decode(strings.NewReader(nodesJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := hexes(Extract(doc.Nodes()))
	want := []string{"#00FF00/fill", "#FF0000/fill"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract(nodes) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNodeArray(t *testing.T) {
	doc, err := Decode(strings.NewReader(`[{"type": "TEXT", "fills": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0}}]}]`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := hexes(Extract(doc.Nodes()))
	if diff := cmp.Diff([]string{"#000000/text"}, got); diff != "" {
		t.Errorf("Extract(array) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "   "},
		{name: "invalid json", input: "{nope"},
		{name: "no document", input: `{"name": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestFind(t *testing.T) {
	doc, err := Decode(strings.NewReader(fileJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	nodes, err := doc.Find("1:4", "1:3")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if nodes[0].Type() != "RECTANGLE" || nodes[1].Type() != TypeText {
		t.Errorf("Find() returned types %s, %s", nodes[0].Type(), nodes[1].Type())
	}

	_, err = doc.Find("9:9")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Find(missing) error = %v, want ErrNodeNotFound", err)
	}
}
