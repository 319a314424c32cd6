// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge is an in-memory wallet bridge. Sessions become connected after
// approveAfter status polls.
type fakeBridge struct {
	*httptest.Server
	t *testing.T

	mu           sync.Mutex
	sessions     map[string]*models.BridgeSessionStatus
	polls        map[string]int
	approveAfter int
	accounts     []string
	presentation json.RawMessage
	requests     []credentialsRequest
	deleted      []string
	created      int
}

func newFakeBridge(t *testing.T) *fakeBridge {
	t.Helper()

	b := &fakeBridge{
		t:            t,
		sessions:     make(map[string]*models.BridgeSessionStatus),
		polls:        make(map[string]int),
		approveAfter: 1,
		accounts:     []string{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		presentation: json.RawMessage(`{"holder":"did:example:123"}`),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

func (b *fakeBridge) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := strings.TrimPrefix(r.URL.Path, "/v1/sessions")

	switch {
	case path == "" && r.Method == http.MethodPost:
		b.created++
		topic := "topic-" + string(rune('0'+b.created))
		b.sessions[topic] = &models.BridgeSessionStatus{Topic: topic}
		_ = json.NewEncoder(w).Encode(models.PairingSession{Topic: topic, URI: "wc:" + topic + "@2?relay-protocol=irn"})

	case strings.HasSuffix(path, "/requests") && r.Method == http.MethodPost:
		topic := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/requests")
		if _, ok := b.sessions[topic]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req credentialsRequest
		require.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))
		b.requests = append(b.requests, req)
		_ = json.NewEncoder(w).Encode(map[string]json.RawMessage{"result": b.presentation})

	case r.Method == http.MethodGet:
		topic := strings.TrimPrefix(path, "/")
		s, ok := b.sessions[topic]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b.polls[topic]++
		if b.polls[topic] >= b.approveAfter {
			s.Connected = true
			s.Accounts = b.accounts
		}
		_ = json.NewEncoder(w).Encode(s)

	case r.Method == http.MethodDelete:
		topic := strings.TrimPrefix(path, "/")
		b.deleted = append(b.deleted, topic)
		if _, ok := b.sessions[topic]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(b.sessions, topic)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *fakeBridge) dropAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions = make(map[string]*models.BridgeSessionStatus)
}

func newTestBridge(t *testing.T, b *fakeBridge, storage store.SessionStorage) *bridgeConnector {
	t.Helper()

	conn, err := NewBridgeConnector(BridgeConfig{
		BaseURL:        b.URL,
		RequestTimeout: time.Second,
		PairingTimeout: 500 * time.Millisecond,
		PollInterval:   10 * time.Millisecond,
	}, storage, logger.Nop())
	require.NoError(t, err)
	return conn.(*bridgeConnector)
}

func TestBridge_PairAndRequestCredentials(t *testing.T) {
	b := newFakeBridge(t)
	b.approveAfter = 3
	storage := store.NewMemorySessionStorage()
	conn := newTestBridge(t, b, storage)
	ctx := context.Background()

	var pairingURI string
	conn.SetPairingHandler(func(uri string) { pairingURI = uri })

	claims := []models.ClaimRequest{models.SimpleIDClaim("Your name", "name", false)}
	raw, err := conn.RequestCredentials(ctx, claims)

	require.NoError(t, err)
	assert.JSONEq(t, `{"holder":"did:example:123"}`, string(raw))
	assert.Equal(t, "wc:topic-1@2?relay-protocol=irn", pairingURI)

	topic, ok, err := storage.Get(ctx, BridgeTopicKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "topic-1", topic)

	require.Len(t, b.requests, 1)
	assert.Equal(t, methodRequestCredentials, b.requests[0].Method)
	assert.Equal(t, claims, b.requests[0].Params.Claims)
	assert.NotEmpty(t, b.requests[0].ID)

	account, ok, err := conn.Account(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testAddress, account)
}

func TestBridge_Declined(t *testing.T) {
	b := newFakeBridge(t)
	b.presentation = json.RawMessage(`null`)
	conn := newTestBridge(t, b, store.NewMemorySessionStorage())

	raw, err := conn.RequestCredentials(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestBridge_PairingTimeout(t *testing.T) {
	b := newFakeBridge(t)
	b.approveAfter = 1 << 30
	storage := store.NewMemorySessionStorage()
	conn := newTestBridge(t, b, storage)

	err := conn.Activate(context.Background())

	assert.ErrorIs(t, err, ErrPairingTimeout)
	assert.Equal(t, []string{"topic-1"}, b.deleted)
	_, ok, _ := storage.Get(context.Background(), BridgeTopicKey)
	assert.False(t, ok)
}

func TestBridge_InitRestoresStoredSession(t *testing.T) {
	b := newFakeBridge(t)
	storage := store.NewMemorySessionStorage()
	ctx := context.Background()

	first := newTestBridge(t, b, storage)
	require.NoError(t, first.Activate(ctx))

	second := newTestBridge(t, b, storage)
	require.NoError(t, second.Init(ctx))

	assert.Equal(t, "topic-1", second.currentTopic())
	live, err := second.HasActiveSession(ctx)
	require.NoError(t, err)
	assert.True(t, live)
	assert.Equal(t, 1, b.created)
}

func TestBridge_InitDropsStaleTopic(t *testing.T) {
	b := newFakeBridge(t)
	storage := store.NewMemorySessionStorage()
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, BridgeTopicKey, "gone"))

	conn := newTestBridge(t, b, storage)
	require.NoError(t, conn.Init(ctx))

	assert.Empty(t, conn.currentTopic())
	_, ok, _ := storage.Get(ctx, BridgeTopicKey)
	assert.False(t, ok)
}

func TestBridge_HasActiveSessionAfterWalletDrop(t *testing.T) {
	b := newFakeBridge(t)
	storage := store.NewMemorySessionStorage()
	conn := newTestBridge(t, b, storage)
	ctx := context.Background()
	require.NoError(t, conn.Activate(ctx))

	b.dropAll()

	live, err := conn.HasActiveSession(ctx)
	require.NoError(t, err)
	assert.False(t, live)

	_, err = conn.Provider().Accounts(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestBridge_Disconnect(t *testing.T) {
	b := newFakeBridge(t)
	storage := store.NewMemorySessionStorage()
	conn := newTestBridge(t, b, storage)
	ctx := context.Background()
	require.NoError(t, conn.Activate(ctx))

	require.NoError(t, conn.Provider().Disconnect(ctx))

	assert.Equal(t, []string{"topic-1"}, b.deleted)
	assert.Empty(t, conn.currentTopic())
	_, ok, _ := storage.Get(ctx, BridgeTopicKey)
	assert.False(t, ok)

	// nothing left to disconnect
	require.NoError(t, conn.Disconnect(ctx))
	assert.Len(t, b.deleted, 1)
}

func TestBridge_DisconnectToleratesMissingSession(t *testing.T) {
	b := newFakeBridge(t)
	conn := newTestBridge(t, b, store.NewMemorySessionStorage())
	ctx := context.Background()
	require.NoError(t, conn.Activate(ctx))
	b.dropAll()

	assert.NoError(t, conn.Disconnect(ctx))
	assert.Empty(t, conn.currentTopic())
}

func TestBridge_RequestCredentialsSessionGone(t *testing.T) {
	b := newFakeBridge(t)
	conn := newTestBridge(t, b, store.NewMemorySessionStorage())
	ctx := context.Background()
	require.NoError(t, conn.Activate(ctx))
	b.dropAll()

	_, err := conn.RequestCredentials(ctx, nil)

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, conn.currentTopic())
}

func TestBridge_CreateSessionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("relay down"))
	}))
	defer srv.Close()

	conn, err := NewBridgeConnector(BridgeConfig{BaseURL: srv.URL}, store.NewMemorySessionStorage(), logger.Nop())
	require.NoError(t, err)

	err = conn.Activate(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestNewBridgeConnector_Defaults(t *testing.T) {
	conn, err := NewBridgeConnector(BridgeConfig{BaseURL: "bridge.local"}, store.NewMemorySessionStorage(), logger.Nop())
	require.NoError(t, err)

	bc := conn.(*bridgeConnector)
	assert.Equal(t, defaultPollInterval, bc.cfg.PollInterval)
	assert.Equal(t, defaultPairingTimeout, bc.cfg.PairingTimeout)
}
