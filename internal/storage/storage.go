package storage

import (
	"gtp/internal/config"
	"gtp/internal/domain"
)

// Storage persists and loads run outputs (e.g. for the fails viewer).
type Storage interface {
	Save(output *domain.RunOutput) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
