package routes

import (
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/api/handlers"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/app"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/controllers"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions. Paths are registered at the root; the external
// surface has no version prefix.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	//Create the item stack: repository -> service -> controller -> handler
	itemService := services.NewItemService(app.ItemRepo)
	itemController := controllers.NewItemController(itemService)
	itemHandler := handlers.NewItemHandler(itemController)

	// --- Register Resource Routes ---
	RegisterItemRoutes(router.Group(""), itemHandler)

	// --- Health Check ---
	router.GET("/ping", handlers.Ping)

	// --- Metrics ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
