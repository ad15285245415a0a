package services

import (
	"context"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
)

// ItemService defines the interface for item-related business logic.
type ItemService interface {
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, input models.CreateItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
	GetItemsByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error)
}
