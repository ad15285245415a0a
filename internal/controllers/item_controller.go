// Package controllers decouples the HTTP handlers from the concrete shape of
// the service layer. Controllers add no logic of their own.
package controllers

import (
	"context"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"
)

// ItemController delegates every call to the underlying ItemService.
type ItemController struct {
	service services.ItemService
}

// NewItemController creates a new ItemController.
func NewItemController(service services.ItemService) *ItemController {
	return &ItemController{service: service}
}

func (c *ItemController) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return c.service.GetAllItems(ctx)
}

func (c *ItemController) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	return c.service.GetItemByID(ctx, id)
}

func (c *ItemController) CreateItem(ctx context.Context, input models.CreateItemInput) (*models.Item, error) {
	return c.service.CreateItem(ctx, input)
}

func (c *ItemController) UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error) {
	return c.service.UpdateItem(ctx, id, input)
}

func (c *ItemController) DeleteItem(ctx context.Context, id int64) (bool, error) {
	return c.service.DeleteItem(ctx, id)
}

func (c *ItemController) GetItemsByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error) {
	return c.service.GetItemsByPriceRange(ctx, min, max)
}
