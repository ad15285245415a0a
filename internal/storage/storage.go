package storage

import (
	"context"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
)

// ItemRepository defines the interface for item data operations. Every method
// issues exactly one round trip to the store; there are no implicit retries.
type ItemRepository interface {
	Create(ctx context.Context, input models.CreateItemInput) (*models.Item, error)
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	Update(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error)
}
