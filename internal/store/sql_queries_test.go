package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectSessionEntryQuery(t *testing.T) {
	query, args, err := buildSelectSessionEntryQuery("SDK_LINK")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM session_entries WHERE name = $1", query)
	assert.Equal(t, []any{"SDK_LINK"}, args)
}

func Test_buildUpsertSessionEntryQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertSessionEntryQuery("SDK_DID", "did:example:123", at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into session_entries (name,value,updated_at) values ($1,$2,$3)"))
	assert.Contains(t, q, "on conflict (name) do update set value = excluded.value")
	require.Len(t, args, 3)
	assert.Equal(t, "SDK_DID", args[0])
	assert.Equal(t, "did:example:123", args[1])
	assert.Equal(t, at, args[2])
}

func Test_buildDeleteSessionEntriesQuery(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantQuery string
	}{
		{
			name:      "single key",
			keys:      []string{"SDK_LINK"},
			wantQuery: "DELETE FROM session_entries WHERE name IN ($1)",
		},
		{
			name:      "both markers",
			keys:      []string{"SDK_LINK", "SDK_DID"},
			wantQuery: "DELETE FROM session_entries WHERE name IN ($1,$2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteSessionEntriesQuery(tt.keys...)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			require.Len(t, args, len(tt.keys))
			for i, k := range tt.keys {
				assert.Equal(t, k, args[i])
			}
		})
	}
}
