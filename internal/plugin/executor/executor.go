// Package executor runs external variable-store plugins over the go-plugin
// RPC protocol and exposes them as a store.Store.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/tokenise/internal/plugin/protocol"
	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// infoTimeout bounds the --plugin-info query.
const infoTimeout = 5 * time.Second

// Store is a variable store backed by an external plugin process. The
// process is started on first use and stopped by Close.
type Store struct {
	path    string
	verbose bool
	logger  hclog.Logger
	runner  ProcessRunner

	mu     sync.Mutex
	client *goplugin.Client
	rpc    *plugin.VariableStoreRPCClient
}

// Option configures a Store.
type Option func(*Store)

// WithVerbose forwards plugin logs to stderr at debug level.
func WithVerbose(verbose bool) Option {
	return func(s *Store) {
		s.verbose = verbose
	}
}

// WithLogger sets the logger used for host-side messages.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProcessRunner replaces the runner used for metadata queries.
func WithProcessRunner(r ProcessRunner) Option {
	return func(s *Store) {
		s.runner = r
	}
}

// New returns a Store for the plugin binary at path. No process is started.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: hclog.NewNullLogger(),
		runner: RealProcessRunner{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the plugin binary path.
func (s *Store) Path() string {
	return s.path
}

// Info queries the plugin's metadata with --plugin-info and checks that its
// protocol version is compatible.
func (s *Store) Info(ctx context.Context) (plugin.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, infoTimeout)
	defer cancel()

	stdout, stderr, err := s.runner.Run(ctx, s.path, []string{protocol.InfoFlag}, nil)
	if err != nil {
		if len(stderr) > 0 {
			return plugin.PluginInfo{}, fmt.Errorf("failed to query plugin: %w\nStderr: %s", err, bytes.TrimSpace(stderr))
		}
		return plugin.PluginInfo{}, fmt.Errorf("failed to query plugin: %w", err)
	}

	return protocol.ParseInfo(stdout)
}

// pluginLogger mirrors plugin output to stderr only when verbose.
func (s *Store) pluginLogger() hclog.Logger {
	if s.verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// connect starts the plugin process if needed and returns its RPC client.
func (s *Store) connect() (*plugin.VariableStoreRPCClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rpc != nil {
		return s.rpc, nil
	}

	s.logger.Debug("starting variable store plugin", "path", s.path)
	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  plugin.Handshake,
		Plugins:          plugin.PluginMap(nil),
		Cmd:              exec.Command(s.path), // #nosec G204 - plugin path is chosen by the user
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           s.pluginLogger(),
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	store, ok := raw.(*plugin.VariableStoreRPCClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s dispensed unexpected type %T", s.path, raw)
	}

	s.client = client
	s.rpc = store
	return store, nil
}

// Collections implements store.Store.
func (s *Store) Collections(ctx context.Context) ([]plugin.Collection, error) {
	c, err := s.connect()
	if err != nil {
		return nil, err
	}
	return c.Collections(ctx)
}

// CreateCollection implements store.Store.
func (s *Store) CreateCollection(ctx context.Context, name string) (plugin.Collection, error) {
	c, err := s.connect()
	if err != nil {
		return plugin.Collection{}, err
	}
	return c.CreateCollection(ctx, name)
}

// ColorVariables implements store.Store.
func (s *Store) ColorVariables(ctx context.Context) ([]plugin.Variable, error) {
	c, err := s.connect()
	if err != nil {
		return nil, err
	}
	return c.ColorVariables(ctx)
}

// CreateColorVariable implements store.Store.
func (s *Store) CreateColorVariable(ctx context.Context, name, collectionID string) (plugin.Variable, error) {
	c, err := s.connect()
	if err != nil {
		return plugin.Variable{}, err
	}
	return c.CreateColorVariable(ctx, name, collectionID)
}

// SetValue implements store.Store.
func (s *Store) SetValue(ctx context.Context, variableID, modeID string, value plugin.ColorValue) error {
	c, err := s.connect()
	if err != nil {
		return err
	}
	return c.SetValue(ctx, variableID, modeID, value)
}

// Close stops the plugin process.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.client.Kill()
		s.client = nil
		s.rpc = nil
	}
}
