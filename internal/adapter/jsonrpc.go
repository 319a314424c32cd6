package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/utils"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// rpcClient posts JSON-RPC 2.0 calls to a single endpoint.
type rpcClient struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newRPCClient(endpoint string, timeout time.Duration, log *logger.Logger) (*rpcClient, error) {
	client, err := utils.NewHTTPClient(endpoint, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid json-rpc endpoint: %w", err)
	}

	return &rpcClient{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

// call invokes method and decodes the result into result when it is not nil.
// A JSON null result leaves result untouched; isNull tells the caller.
func (c *rpcClient) call(ctx context.Context, method string, params any, result any) (isNull bool, err error) {
	if params == nil {
		params = []any{}
	}
	req := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      c.ids.Generate(),
		Method:  method,
		Params:  params,
	}

	var rpcResp rpcResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&rpcResp).
		ForceContentType("application/json").
		Post("")
	if err != nil {
		return false, fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, fmt.Errorf("%s: %w", method, err)
	}
	if err = mapRPCError(method, rpcResp.Error); err != nil {
		c.logger.Debug().
			Str("func", "rpcClient.call").
			Str("method", method).
			Str("request_id", req.ID).
			Err(err).
			Msg("json-rpc endpoint returned an error")
		return false, err
	}

	raw := bytes.TrimSpace(rpcResp.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true, nil
	}
	if result == nil {
		return false, nil
	}
	if err = json.Unmarshal(raw, result); err != nil {
		return false, fmt.Errorf("%s: %w: %w", method, ErrInvalidResponse, err)
	}

	return false, nil
}
