package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client, err := NewHTTPClient("https://bridge.example/", 5*time.Second)

	require.NoError(t, err)
	require.NotNil(t, client.Client)
	assert.Equal(t, "https://bridge.example", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1, err := NewHTTPClient("localhost:1", 0)
	require.NoError(t, err)
	client2, err := NewHTTPClient("localhost:2", 0)
	require.NoError(t, err)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_InvalidURL(t *testing.T) {
	_, err := NewHTTPClient("   ", time.Second)
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8545", want: "http://localhost:8545"},
		{name: "strips slash", raw: "https://api.elastos.io/eid/", want: "https://api.elastos.io/eid"},
		{name: "trims spaces", raw: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
