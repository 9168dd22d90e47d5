package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// InfoFlag is the argument a plugin binary answers with its metadata as JSON.
const InfoFlag = "--plugin-info"

// ParseInfo decodes the output of a plugin's --plugin-info query and checks
// its protocol version.
func ParseInfo(output []byte) (plugin.PluginInfo, error) {
	var info plugin.PluginInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to parse plugin info: %w", err)
	}
	if info.Name == "" {
		return plugin.PluginInfo{}, fmt.Errorf("plugin info has no name")
	}
	if err := CheckCompatible(info.ProtocolVersion); err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("plugin %s: %w", info.Name, err)
	}
	return info, nil
}
