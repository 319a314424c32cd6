// Package utils provides general-purpose helpers used across the client:
// flow ids carried in context, request id generation, the shared resty
// client, session token signing and wallet address formatting.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// FlowIDCtxKey is the context key holding the id of the sign-in or sign-out
// flow a call belongs to. It is attached to log lines.
var FlowIDCtxKey = contextKey("flowID")

// WithFlowID returns a copy of ctx carrying flowID.
func WithFlowID(ctx context.Context, flowID string) context.Context {
	return context.WithValue(ctx, FlowIDCtxKey, flowID)
}

// GetFlowIDFromContext retrieves the flow id stored by [WithFlowID].
func GetFlowIDFromContext(ctx context.Context) (string, bool) {
	flowID, ok := ctx.Value(FlowIDCtxKey).(string)
	return flowID, ok && flowID != ""
}
