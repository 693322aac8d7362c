package db

import (
	"fmt"
	"path/filepath"
)

// BackendType represents the type of storage backend
type BackendType string

const (
	// LevelDBBackend uses the LevelDB implementation
	LevelDBBackend BackendType = "leveldb"

	// BoltBackend uses the bbolt implementation
	BoltBackend BackendType = "bolt"

	// MemoryBackend keeps everything in process memory
	MemoryBackend BackendType = "memory"
)

// BackendConfig holds configuration for creating a provider
type BackendConfig struct {
	// Type specifies which backend implementation to use
	Type BackendType `json:"type" yaml:"type"`

	// Directory is the database directory path (for file-based backends)
	Directory string `json:"directory" yaml:"directory"`
}

// Validate validates the backend configuration
func (bc *BackendConfig) Validate() error {
	if bc.Type == "" {
		return fmt.Errorf("backend type cannot be empty")
	}

	switch bc.Type {
	case LevelDBBackend, BoltBackend:
		if bc.Directory == "" {
			return fmt.Errorf("directory cannot be empty for backend %s", bc.Type)
		}
		return nil
	case MemoryBackend:
		return nil
	default:
		return fmt.Errorf("unsupported backend type: %s", bc.Type)
	}
}

// NewProvider creates a database provider based on the configuration
func NewProvider(config *BackendConfig) (DatabaseProvider, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch config.Type {
	case LevelDBBackend:
		return NewLevelDBProvider(config.Directory)

	case BoltBackend:
		return NewBoltProvider(filepath.Join(config.Directory, "chainvault.db"))

	case MemoryBackend:
		return NewMemoryProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
