package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_Memory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, storages.SessionStorage)
	assert.NoError(t, storages.Close())
}

func TestNewClientStorages_EmptyDSN(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("signin.db"))
	assert.False(t, isPostgresDSN("/var/lib/postgres.db"))
}
