// Package plugin provides the public API for tokenise variable-store plugins.
// External plugins should import this package instead of internal packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// PluginName is the name under which the variable store is dispensed.
	PluginName = "variable-store"
)

// Handshake is the handshake configuration for go-plugin protocol.
// This ensures that plugins using go-plugin can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "TOKENISE_PLUGIN",
	MagicCookieValue: "tokenise_variable_store",
}

// PluginMap returns the plugin set served and dispensed by tokenise.
func PluginMap(impl VariableStore) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginName: &VariableStoreRPC{Impl: impl},
	}
}

// Serve runs impl as a go-plugin variable store on stdio. It blocks until the
// host disconnects and is meant to be called from a plugin's main.
func Serve(impl VariableStore) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
