package routes

import (
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers all routes related to items
func RegisterItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ItemHandlerInterface) {

	items := rg.Group("/items")
	{
		items.GET("", itemHandler.GetItems)
		items.POST("", itemHandler.CreateItem)
		items.GET("/:id", itemHandler.GetItemByID)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
		items.GET("/filter/:minPrice/:maxPrice", itemHandler.FilterItems)
	}
}
