package api

import (
	"context"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// ConditionsFetcher defines the conditions lookup needed by handlers
type ConditionsFetcher interface {
	Fetch(ctx context.Context, lat, lng float64) (*models.ConditionsViewModel, error)
}

// ReadingStore defines the history operations needed by handlers.
// A nil store disables the readings endpoint.
type ReadingStore interface {
	Save(ctx context.Context, r *models.Reading) error
	Recent(ctx context.Context, spotID string, limit int) ([]models.Reading, error)
}
