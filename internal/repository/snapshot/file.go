package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
)

// FileRepository stores the snapshot as a JSON file on disk.
type FileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository builds a file-backed snapshot store at the given path.
func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{path: path, logger: logger}
}

// Load reads and decodes the snapshot file.
func (r *FileRepository) Load(_ context.Context) (*models.FarmState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot %s: %w", r.path, err)
	}

	var state models.FarmState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", r.path, err)
	}

	return &state, nil
}

// Save writes the snapshot atomically via a temporary file and rename.
func (r *FileRepository) Save(_ context.Context, state models.FarmState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".farmstate-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot %s: %w", r.path, err)
	}

	r.logger.Debug("snapshot written", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return nil
}
