// Package source loads design documents from local files, compressed files,
// standard input and the Figma REST API.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tokenise/internal/security"
	"github.com/jmylchreest/tokenise/internal/tree"
	httputil "github.com/jmylchreest/tokenise/internal/util/http"
)

const (
	// FigmaScheme is the reference scheme for Figma files: figma://<fileKey>?ids=1:2,3:4.
	FigmaScheme = "figma"

	// DefaultFigmaAPI is the base URL of the Figma REST API.
	DefaultFigmaAPI = "https://api.figma.com"

	// DefaultMaxSize limits the size of a decoded document.
	DefaultMaxSize int64 = 64 * 1024 * 1024

	// Stdin is the reference that reads a document from standard input.
	Stdin = "-"
)

// ErrNoToken is returned when a Figma reference is loaded without an access token.
var ErrNoToken = errors.New("figma access token required (set FIGMA_TOKEN)")

// Kind classifies a document reference.
type Kind int

const (
	KindFile Kind = iota
	KindStdin
	KindFigma
	KindURL
)

// Reference is a parsed document location.
type Reference struct {
	Kind Kind

	// Path is the file path for KindFile.
	Path string

	// FileKey and IDs identify a Figma file and optional nodes for KindFigma.
	FileKey string
	IDs     []string

	// URL is the document URL for KindURL.
	URL string
}

// ParseReference classifies ref. Accepted forms are a file path, "-",
// figma://<fileKey>?ids=..., a figma.com file or design link, and an
// HTTPS URL.
func ParseReference(ref string) (Reference, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return Reference{}, fmt.Errorf("empty document reference")
	case ref == Stdin:
		return Reference{Kind: KindStdin}, nil
	case strings.HasPrefix(ref, FigmaScheme+"://"):
		return parseFigmaRef(ref)
	case strings.Contains(ref, "://"):
		u, err := url.Parse(ref)
		if err != nil {
			return Reference{}, fmt.Errorf("invalid URL: %w", err)
		}
		if r, ok := parseFigmaLink(u); ok {
			return r, nil
		}
		if err := security.ValidateHTTPURL(ref); err != nil {
			return Reference{}, err
		}
		return Reference{Kind: KindURL, URL: ref}, nil
	}
	return Reference{Kind: KindFile, Path: ref}, nil
}

func parseFigmaRef(ref string) (Reference, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid figma reference: %w", err)
	}
	if u.Host == "" {
		return Reference{}, fmt.Errorf("figma reference %q has no file key", ref)
	}
	return Reference{Kind: KindFigma, FileKey: u.Host, IDs: splitIDs(u.Query().Get("ids"))}, nil
}

// parseFigmaLink recognises https://www.figma.com/{file,design}/<key>/<name>?node-id=1-2.
func parseFigmaLink(u *url.URL) (Reference, bool) {
	host := strings.ToLower(u.Hostname())
	if host != "figma.com" && host != "www.figma.com" {
		return Reference{}, false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "file" && parts[0] != "design") || parts[1] == "" {
		return Reference{}, false
	}

	var ids []string
	if nodeID := u.Query().Get("node-id"); nodeID != "" {
		ids = []string{strings.ReplaceAll(nodeID, "-", ":")}
	}
	return Reference{Kind: KindFigma, FileKey: parts[1], IDs: ids}, true
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Options configures a Loader.
type Options struct {
	// FigmaToken is sent as X-Figma-Token to the Figma API.
	FigmaToken string

	// CacheDir holds cached remote documents. Empty means DefaultCacheDir.
	CacheDir string

	// NoCache disables reading and writing the cache.
	NoCache bool

	// APIBase overrides DefaultFigmaAPI.
	APIBase string

	// MaxSize limits the decoded document size. Zero means DefaultMaxSize.
	MaxSize int64

	// Stdin is read for the "-" reference. Nil means os.Stdin.
	Stdin io.Reader

	// HTTPClient overrides the client used for remote documents.
	HTTPClient *http.Client

	// Logger receives debug output. Nil discards it.
	Logger hclog.Logger
}

// Loader loads documents by reference.
type Loader struct {
	opts  Options
	cache *Cache
}

// NewLoader returns a loader with defaults applied.
func NewLoader(opts Options) (*Loader, error) {
	if opts.APIBase == "" {
		opts.APIBase = DefaultFigmaAPI
	}
	opts.APIBase = strings.TrimRight(opts.APIBase, "/")
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	l := &Loader{opts: opts}
	if !opts.NoCache {
		cache, err := NewCache(opts.CacheDir)
		if err != nil {
			return nil, err
		}
		l.cache = cache
	}
	return l, nil
}

// Load reads and decodes the document ref points to.
func (l *Loader) Load(ctx context.Context, ref string) (*tree.Document, error) {
	r, err := ParseReference(ref)
	if err != nil {
		return nil, err
	}
	return l.LoadReference(ctx, r)
}

// LoadReference reads and decodes a parsed reference.
func (l *Loader) LoadReference(ctx context.Context, r Reference) (*tree.Document, error) {
	switch r.Kind {
	case KindStdin:
		return l.decode(l.opts.Stdin, CompressionNone)
	case KindFile:
		return l.loadFile(r.Path)
	case KindFigma:
		if l.opts.FigmaToken == "" {
			return nil, ErrNoToken
		}
		return l.loadRemote(ctx, l.FigmaURL(r), true)
	case KindURL:
		return l.loadRemote(ctx, r.URL, isFigmaAPI(r.URL))
	}
	return nil, fmt.Errorf("unsupported document reference kind %d", r.Kind)
}

// FigmaURL returns the REST endpoint for a Figma reference: the nodes
// endpoint when IDs are given, else the whole file.
func (l *Loader) FigmaURL(r Reference) string {
	base := l.opts.APIBase + "/v1/files/" + url.PathEscape(r.FileKey)
	if len(r.IDs) == 0 {
		return base
	}
	return base + "/nodes?ids=" + url.QueryEscape(strings.Join(r.IDs, ","))
}

func (l *Loader) loadFile(path string) (*tree.Document, error) {
	f, err := os.Open(path) // #nosec G304 - Document path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	l.opts.Logger.Debug("loading document file", "path", path)
	return l.decode(f, DetectCompression(path))
}

func (l *Loader) loadRemote(ctx context.Context, docURL string, sendToken bool) (*tree.Document, error) {
	log := l.opts.Logger.With("url", docURL)

	if l.cache != nil {
		data, ok, err := l.cache.Get(docURL)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Debug("using cached document", "path", l.cache.Path(docURL))
			return l.decode(bytes.NewReader(data), CompressionNone)
		}
	}

	headers := map[string]string{}
	if sendToken && l.opts.FigmaToken != "" {
		headers["X-Figma-Token"] = l.opts.FigmaToken
	}

	log.Debug("fetching document")
	data, err := httputil.Fetch(ctx, docURL, httputil.FetchOptions{
		MaxBytes: l.opts.MaxSize,
		Headers:  headers,
		Client:   l.opts.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}

	doc, err := l.decode(bytes.NewReader(data), CompressionNone)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Put(docURL, data); err != nil {
			log.Warn("failed to cache document", "error", err)
		}
	}
	return doc, nil
}

func (l *Loader) decode(r io.Reader, c Compression) (*tree.Document, error) {
	dr, closeFn, err := decompressor(r, c)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	doc, err := tree.Decode(security.NewLimitedReader(dr, l.opts.MaxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

func isFigmaAPI(docURL string) bool {
	u, err := url.Parse(docURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), "api.figma.com")
}
