package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapHTTPError(responseWithStatus(t, tt.status, "details"))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusNoContent, "")))
}

func TestMapHTTPError_Unknown(t *testing.T) {
	err := mapHTTPError(responseWithStatus(t, http.StatusTeapot, ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestMapRPCError(t *testing.T) {
	assert.NoError(t, mapRPCError("eth_accounts", nil))

	err := mapRPCError("eth_requestAccounts", &rpcError{Code: userRejectedCode, Message: "rejected"})
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.False(t, errors.Is(err, ErrRPC))

	err = mapRPCError("did_resolveDID", &rpcError{Code: -32000, Message: "boom"})
	assert.ErrorIs(t, err, ErrRPC)
	var rpcErr *rpcError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
}
