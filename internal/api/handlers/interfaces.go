package handlers

import (
	"context"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"

	"github.com/gin-gonic/gin"
)

// ItemController defines what the handlers need from the controller layer.
type ItemController interface {
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, input models.CreateItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
	GetItemsByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error)
}

// ItemHandlerInterface defines the methods needed by the item routes.
type ItemHandlerInterface interface {
	GetItems(c *gin.Context)
	GetItemByID(c *gin.Context)
	CreateItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
	FilterItems(c *gin.Context)
}
