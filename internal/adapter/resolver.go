package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/models"
)

const methodResolveDID = "did_resolveDID"

type resolveParams struct {
	DID string `json:"did"`
	All bool   `json:"all"`
}

type resolveResult struct {
	DID         string              `json:"did"`
	Status      int                 `json:"status"`
	Transaction []resolvedOperation `json:"transaction"`
}

type resolvedOperation struct {
	TxID      string `json:"txid"`
	Timestamp string `json:"timestamp"`
	Operation struct {
		Payload string `json:"payload"`
	} `json:"operation"`
}

// didResolver resolves DIDs through a did_resolveDID JSON-RPC endpoint.
type didResolver struct {
	rpc    *rpcClient
	logger *logger.Logger
}

func NewDIDResolver(endpoint string, timeout time.Duration, log *logger.Logger) (DIDResolver, error) {
	rpc, err := newRPCClient(endpoint, timeout, log)
	if err != nil {
		return nil, fmt.Errorf("did resolver: %w", err)
	}
	return &didResolver{rpc: rpc, logger: log}, nil
}

// Resolve asks for the latest transaction of did only. A null result is
// reported as [models.DIDStatusNotFound]. The document is decoded from the
// base64url payload of the latest operation when one is present.
func (r *didResolver) Resolve(ctx context.Context, did string) (models.ResolvedDID, error) {
	params := []resolveParams{{DID: did, All: false}}

	var result resolveResult
	isNull, err := r.rpc.call(ctx, methodResolveDID, params, &result)
	if err != nil {
		return models.ResolvedDID{}, err
	}
	if isNull {
		return models.ResolvedDID{DID: did, Status: models.DIDStatusNotFound}, nil
	}

	resolved := models.ResolvedDID{
		DID:    did,
		Status: models.DIDStatus(result.Status),
	}
	if len(result.Transaction) == 0 || result.Transaction[0].Operation.Payload == "" {
		return resolved, nil
	}

	doc, err := decodeDIDDocument(result.Transaction[0].Operation.Payload)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("func", "didResolver.Resolve").
			Str("did", did).
			Msg("resolver returned an undecodable document")
		return models.ResolvedDID{}, fmt.Errorf("%s: %w: %w", methodResolveDID, ErrInvalidResponse, err)
	}
	resolved.Document = &doc

	return resolved, nil
}

func decodeDIDDocument(payload string) (models.DIDDocument, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return models.DIDDocument{}, fmt.Errorf("decode payload: %w", err)
	}

	var doc models.DIDDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return models.DIDDocument{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
