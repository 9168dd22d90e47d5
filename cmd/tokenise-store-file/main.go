// tokenise-store-file is a variable-store plugin that keeps variables in a
// JSON file. Use it with:
//
//	tokenise export variables --store plugin:/path/to/tokenise-store-file design.json
//
// The file is taken from $TOKENISE_STORE_FILE, or the first argument, and
// defaults to tokenise-variables.json in the working directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmylchreest/tokenise/internal/plugin/protocol"
	"github.com/jmylchreest/tokenise/internal/store"
	"github.com/jmylchreest/tokenise/internal/version"
	"github.com/jmylchreest/tokenise/pkg/plugin"
)

const (
	pluginName        = "file"
	pluginDescription = "Store colour variables in a JSON file"
	defaultStoreFile  = "tokenise-variables.json"
	envStoreFile      = "TOKENISE_STORE_FILE"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == protocol.InfoFlag {
		if err := printInfo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := defaultStoreFile
	if v := os.Getenv(envStoreFile); v != "" {
		path = v
	} else if len(args) > 0 {
		path = args[0]
	}

	s, err := store.OpenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plugin.Serve(s)
}

func printInfo() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(plugin.PluginInfo{
		Name:            pluginName,
		Version:         version.Short(),
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     pluginDescription,
	})
}
