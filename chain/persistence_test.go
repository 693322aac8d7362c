package chain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainvault/db"
)

// Reopening a chain from disk must land on the same tip and still
// validate, for every durable backend.
func TestReopenFromDisk(t *testing.T) {
	backends := map[string]func(t *testing.T) *db.BackendConfig{
		"leveldb": func(t *testing.T) *db.BackendConfig {
			return &db.BackendConfig{Type: db.LevelDBBackend, Directory: filepath.Join(t.TempDir(), "ldb")}
		},
		"bolt": func(t *testing.T) *db.BackendConfig {
			return &db.BackendConfig{Type: db.BoltBackend, Directory: t.TempDir()}
		},
	}

	for name, makeConfig := range backends {
		t.Run(name, func(t *testing.T) {
			cfg := makeConfig(t)

			provider, err := db.NewProvider(cfg)
			require.NoError(t, err)

			c, err := Open(provider)
			require.NoError(t, err)
			require.NoError(t, c.Append([]byte("Alice pays Bob 5")))
			require.NoError(t, c.Append([]byte("Bob pays Carol 2")))
			tip := c.Tip()
			require.NoError(t, c.Close())

			provider, err = db.NewProvider(cfg)
			require.NoError(t, err)

			reopened, err := Open(provider)
			require.NoError(t, err)
			defer reopened.Close()

			assert.Equal(t, tip, reopened.Tip())

			result, err := reopened.Validate()
			require.NoError(t, err)
			assert.True(t, result.Valid)

			assert.Equal(t,
				[]string{"Bob pays Carol 2", "Alice pays Bob 5", string(DefaultGenesisPayload)},
				tipPayloads(t, reopened))
		})
	}
}
