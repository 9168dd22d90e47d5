package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// VariableStoreRPC implements the go-plugin Plugin interface for variable stores.
type VariableStoreRPC struct {
	plugin.Plugin
	Impl VariableStore
}

// Server returns an RPC server for this plugin.
func (p *VariableStoreRPC) Server(*plugin.MuxBroker) (any, error) {
	return &VariableStoreRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *VariableStoreRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &VariableStoreRPCClient{client: c}, nil
}

// VariableStoreRPCServer is the RPC server implementation for variable stores.
type VariableStoreRPCServer struct {
	Impl VariableStore
}

// Collections implements the RPC method for listing collections.
func (s *VariableStoreRPCServer) Collections(_ any, resp *[]Collection) error {
	collections, err := s.Impl.Collections(context.Background())
	if err != nil {
		return err
	}
	*resp = collections
	return nil
}

// CreateCollection implements the RPC method for creating a collection.
func (s *VariableStoreRPCServer) CreateCollection(name string, resp *Collection) error {
	collection, err := s.Impl.CreateCollection(context.Background(), name)
	if err != nil {
		return err
	}
	*resp = collection
	return nil
}

// ColorVariables implements the RPC method for listing colour variables.
func (s *VariableStoreRPCServer) ColorVariables(_ any, resp *[]Variable) error {
	variables, err := s.Impl.ColorVariables(context.Background())
	if err != nil {
		return err
	}
	*resp = variables
	return nil
}

// CreateColorVariable implements the RPC method for creating a colour variable.
func (s *VariableStoreRPCServer) CreateColorVariable(args CreateVariableArgs, resp *Variable) error {
	variable, err := s.Impl.CreateColorVariable(context.Background(), args.Name, args.CollectionID)
	if err != nil {
		return err
	}
	*resp = variable
	return nil
}

// SetValue implements the RPC method for setting a variable value.
func (s *VariableStoreRPCServer) SetValue(args SetValueArgs, resp *bool) error {
	if err := s.Impl.SetValue(context.Background(), args.VariableID, args.ModeID, args.Value); err != nil {
		return err
	}
	*resp = true
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *VariableStoreRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	if mp, ok := s.Impl.(MetadataProvider); ok {
		*resp = mp.GetMetadata()
		return nil
	}
	*resp = PluginInfo{ProtocolVersion: ProtocolVersion}
	return nil
}

// VariableStoreRPCClient is the RPC client implementation for variable stores.
// Calls return early with ctx.Err() if ctx is done before the reply arrives;
// the remote call itself is not interrupted.
type VariableStoreRPCClient struct {
	client *rpc.Client
}

// NewVariableStoreRPCClient wraps an existing net/rpc client.
func NewVariableStoreRPCClient(c *rpc.Client) *VariableStoreRPCClient {
	return &VariableStoreRPCClient{client: c}
}

func (c *VariableStoreRPCClient) call(ctx context.Context, method string, args, reply any) error {
	call := c.client.Go("Plugin."+method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		if done.Error != nil {
			return &RPCError{Method: method, Message: done.Error.Error()}
		}
		return nil
	}
}

// Collections calls the remote Collections method.
func (c *VariableStoreRPCClient) Collections(ctx context.Context) ([]Collection, error) {
	var collections []Collection
	err := c.call(ctx, "Collections", new(any), &collections)
	return collections, err
}

// CreateCollection calls the remote CreateCollection method.
func (c *VariableStoreRPCClient) CreateCollection(ctx context.Context, name string) (Collection, error) {
	var collection Collection
	err := c.call(ctx, "CreateCollection", name, &collection)
	return collection, err
}

// ColorVariables calls the remote ColorVariables method.
func (c *VariableStoreRPCClient) ColorVariables(ctx context.Context) ([]Variable, error) {
	var variables []Variable
	err := c.call(ctx, "ColorVariables", new(any), &variables)
	return variables, err
}

// CreateColorVariable calls the remote CreateColorVariable method.
func (c *VariableStoreRPCClient) CreateColorVariable(ctx context.Context, name, collectionID string) (Variable, error) {
	var variable Variable
	err := c.call(ctx, "CreateColorVariable", CreateVariableArgs{Name: name, CollectionID: collectionID}, &variable)
	return variable, err
}

// SetValue calls the remote SetValue method.
func (c *VariableStoreRPCClient) SetValue(ctx context.Context, variableID, modeID string, value ColorValue) error {
	var ok bool
	return c.call(ctx, "SetValue", SetValueArgs{VariableID: variableID, ModeID: modeID, Value: value}, &ok)
}

// GetMetadata calls the remote GetMetadata method.
func (c *VariableStoreRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.call(context.Background(), "GetMetadata", new(any), &info)
	return info, err
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Method  string
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	if e.Method == "" {
		return e.Message
	}
	return e.Method + ": " + e.Message
}
