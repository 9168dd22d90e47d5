package source

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/tokenise/internal/security"
)

const nodesJSON = `{"name":"Brand kit","nodes":{"1:2":{"document":{"id":"1:2","type":"FRAME","fills":[{"type":"SOLID","color":{"r":0,"g":0,"b":1}}]}}}}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func xzed(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref     string
		want    Reference
		wantErr bool
	}{
		{ref: "doc.json", want: Reference{Kind: KindFile, Path: "doc.json"}},
		{ref: "-", want: Reference{Kind: KindStdin}},
		{ref: "figma://AbC123", want: Reference{Kind: KindFigma, FileKey: "AbC123"}},
		{ref: "figma://AbC123?ids=1:2,%203:4", want: Reference{Kind: KindFigma, FileKey: "AbC123", IDs: []string{"1:2", "3:4"}}},
		{ref: "https://www.figma.com/design/AbC123/Brand-kit?node-id=12-34", want: Reference{Kind: KindFigma, FileKey: "AbC123", IDs: []string{"12:34"}}},
		{ref: "https://figma.com/file/AbC123/Brand", want: Reference{Kind: KindFigma, FileKey: "AbC123"}},
		{ref: "https://example.com/tokens.json", want: Reference{Kind: KindURL, URL: "https://example.com/tokens.json"}},
		{ref: "", wantErr: true},
		{ref: "figma://", wantErr: true},
		{ref: "http://example.com/doc.json", wantErr: true},
		{ref: "https://localhost/doc.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReference(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); !tt.wantErr && diff != "" {
				t.Errorf("ParseReference(%q) mismatch (-want +got):\n%s", tt.ref, diff)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	tests := []struct {
		name string
		file string
		data func(t *testing.T) []byte
	}{
		{name: "plain", file: "doc.json", data: func(*testing.T) []byte { return []byte(nodesJSON) }},
		{name: "gzip", file: "doc.json.gz", data: func(t *testing.T) []byte { return gzipped(t, nodesJSON) }},
		{name: "xz", file: "doc.json.xz", data: func(t *testing.T) []byte { return xzed(t, nodesJSON) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data(t))
			l, err := NewLoader(Options{NoCache: true})
			if err != nil {
				t.Fatal(err)
			}

			doc, err := l.Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if doc.Name != "Brand kit" || len(doc.Roots) != 1 || doc.Roots[0].ID != "1:2" {
				t.Errorf("Load() = %+v", doc)
			}
		})
	}
}

func TestLoadStdin(t *testing.T) {
	l, err := NewLoader(Options{NoCache: true, Stdin: strings.NewReader(nodesJSON)})
	if err != nil {
		t.Fatal(err)
	}
	doc, err := l.Load(context.Background(), Stdin)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Nodes()) != 1 {
		t.Errorf("Load() returned %d nodes, want 1", len(doc.Nodes()))
	}
}

func TestLoadSizeLimit(t *testing.T) {
	path := writeFile(t, "big.json.gz", gzipped(t, nodesJSON))
	l, err := NewLoader(Options{NoCache: true, MaxSize: 16})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(context.Background(), path); !errors.Is(err, security.ErrSizeLimit) {
		t.Errorf("Load() error = %v, want ErrSizeLimit", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l, _ := NewLoader(Options{NoCache: true})
	if _, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestLoadFigma(t *testing.T) {
	var (
		mu                          sync.Mutex
		hits                        int
		gotPath, gotQuery, gotToken string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		hits++
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("ids")
		gotToken = r.Header.Get("X-Figma-Token")
		w.Write([]byte(nodesJSON))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	l, err := NewLoader(Options{FigmaToken: "secret", APIBase: srv.URL, CacheDir: cacheDir})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		doc, err := l.Load(ctx, "figma://AbC123?ids=1:2")
		if err != nil {
			t.Fatalf("Load() #%d error = %v", i, err)
		}
		if len(doc.Roots) != 1 {
			t.Fatalf("Load() #%d returned %d roots", i, len(doc.Roots))
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (second load from cache)", hits)
	}
	if gotPath != "/v1/files/AbC123/nodes" || gotQuery != "1:2" {
		t.Errorf("request = %s?ids=%s", gotPath, gotQuery)
	}
	if gotToken != "secret" {
		t.Errorf("X-Figma-Token = %q, want secret", gotToken)
	}

	cache, _ := NewCache(cacheDir)
	if _, ok, _ := cache.Get(l.FigmaURL(Reference{Kind: KindFigma, FileKey: "AbC123", IDs: []string{"1:2"}})); !ok {
		t.Error("document not cached")
	}
}

func TestLoadFigmaErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":403,"err":"Invalid token"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	l, _ := NewLoader(Options{FigmaToken: "bad", APIBase: srv.URL, NoCache: true})
	if _, err := l.Load(context.Background(), "figma://AbC123"); err == nil || !strings.Contains(err.Error(), "403") {
		t.Errorf("Load() error = %v, want HTTP 403", err)
	}

	noToken, _ := NewLoader(Options{APIBase: srv.URL, NoCache: true})
	if _, err := noToken.Load(context.Background(), "figma://AbC123"); !errors.Is(err, ErrNoToken) {
		t.Errorf("Load() error = %v, want ErrNoToken", err)
	}
}

func TestFigmaURL(t *testing.T) {
	l, _ := NewLoader(Options{NoCache: true})
	if got := l.FigmaURL(Reference{FileKey: "AbC"}); got != "https://api.figma.com/v1/files/AbC" {
		t.Errorf("FigmaURL() = %s", got)
	}
	if got := l.FigmaURL(Reference{FileKey: "AbC", IDs: []string{"1:2", "3:4"}}); got != "https://api.figma.com/v1/files/AbC/nodes?ids=1%3A2%2C3%3A4" {
		t.Errorf("FigmaURL() = %s", got)
	}
}

func TestDetectCompression(t *testing.T) {
	tests := map[string]Compression{
		"doc.json":    CompressionNone,
		"doc.json.gz": CompressionGzip,
		"DOC.JSON.XZ": CompressionXz,
	}
	for path, want := range tests {
		if got := DetectCompression(path); got != want {
			t.Errorf("DetectCompression(%q) = %q, want %q", path, got, want)
		}
	}
}
