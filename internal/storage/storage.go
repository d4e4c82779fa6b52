package storage

import (
	"time"

	"qsnap/internal/config"
	"qsnap/internal/domain"
)

// Storage persists and loads run results (e.g. for the view command).
type Storage interface {
	Save(results []domain.CaseResult, duration time.Duration) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after the viewer marks
	// failures resolved).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores run results in a JSON file under the configured
// output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output
// JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
