package snapshot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
)

// ErrNotFound indicates no snapshot has been persisted yet.
var ErrNotFound = errors.New("snapshot not found")

// Repository persists the FarmState as a single opaque blob.
type Repository interface {
	Load(ctx context.Context) (*models.FarmState, error)
	Save(ctx context.Context, state models.FarmState) error
}

// LoadOrDefault loads the persisted state, falling back to the default
// initial state when nothing is stored or the stored blob is unreadable.
// Persistence problems degrade to the default; they are never fatal.
func LoadOrDefault(ctx context.Context, repo Repository, initialFowls int, logger *zap.Logger) *models.FarmState {
	if logger == nil {
		logger = zap.NewNop()
	}

	if repo == nil {
		return models.NewFarmState(initialFowls)
	}

	state, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("failed loading snapshot, starting from default state", zap.Error(err))
		}
		return models.NewFarmState(initialFowls)
	}

	state.Normalize()
	return state
}
