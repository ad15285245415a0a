package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/transport/dto"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/validation"

	"github.com/gin-gonic/gin"
)

// ItemHandler holds the controller dependency for item operations
type ItemHandler struct {
	controller ItemController
}

// NewItemHandler creates a new ItemHandler with the given controller
func NewItemHandler(controller ItemController) *ItemHandler {
	return &ItemHandler{controller: controller}
}

// GetItems godoc
// @Summary      List all items
// @Description  Retrieves a list of all available items.
// @Tags         items
// @Produce      json
// @Success      200  {array}   models.Item "Successfully retrieved list of items"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.controller.GetAllItems(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	// Repository guarantees an empty slice, not nil, when no items exist
	c.JSON(http.StatusOK, items)
}

// GetItemByID godoc
// @Summary      Get an item by ID
// @Description  Retrieves details for a specific item by its ID.
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  models.Item "Successfully retrieved item"
// @Failure      400  {object}  map[string]any "Invalid item ID format"
// @Failure      404  {object}  map[string]string "Item Not Found"
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	item, err := h.controller.GetItemByID(c.Request.Context(), id)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) && svcErr.Kind == services.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary      Create a new item
// @Description  Adds a new item to the database. The ID is assigned by the store.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body      dto.CreateItemRequest true  "Item to create"
// @Success      201  {object}  models.Item "Item created successfully"
// @Failure      400  {object}  map[string]any "Missing payload or validation errors"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindPayload(c, &req) {
		return
	}

	input := models.CreateItemInput{
		Name:  req.Name,
		Price: req.Price.Float64(),
	}

	item, err := h.controller.CreateItem(c.Request.Context(), input)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) && svcErr.Kind == services.KindValidation {
			respondFieldErrors(c, http.StatusBadRequest, svcErr.Fields)
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary      Update an existing item
// @Description  Updates name and price for an existing item identified by ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int                   true  "Item ID"
// @Param        item body      dto.UpdateItemRequest true  "Updated fields"
// @Success      200  {object}  models.Item "Item updated successfully"
// @Failure      400  {object}  map[string]any "Invalid ID, missing payload or validation errors"
// @Failure      404  {object}  map[string]any "Item Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if !bindPayload(c, &req) {
		return
	}

	input := models.UpdateItemInput{
		Name:  req.Name,
		Price: req.Price.Float64(),
	}

	item, err := h.controller.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			switch svcErr.Kind {
			case services.KindNotFound:
				respondFieldErrors(c, http.StatusNotFound, []validation.FieldError{
					{Message: "Item not found"},
				})
			case services.KindValidation:
				respondFieldErrors(c, http.StatusBadRequest, svcErr.Fields)
			}
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Delete an item by ID
// @Description  Removes an item from the database by its ID.
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      204  {object}  nil "Item deleted successfully"
// @Failure      400  {object}  map[string]any "Invalid item ID format"
// @Failure      404  {object}  map[string]string "Item Not Found"
// @Failure      500  {object}  map[string]string "Row confirmed but not deleted"
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	deleted, err := h.controller.DeleteItem(c.Request.Context(), id)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) && svcErr.Kind == services.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		_ = c.Error(err)
		return
	}

	// Existence was confirmed before the delete, so zero rows affected means
	// the row disappeared in between.
	if !deleted {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Item can't be deleted"})
		return
	}

	c.Status(http.StatusNoContent)
}

// FilterItems godoc
// @Summary      List items within a price range
// @Description  Retrieves all items whose price falls in [minPrice, maxPrice].
// @Tags         items
// @Produce      json
// @Param        minPrice path   number  true  "Lower price bound (inclusive)"
// @Param        maxPrice path   number  true  "Upper price bound (inclusive)"
// @Success      200  {array}   models.Item "Matching items"
// @Failure      400  {object}  map[string]any "Invalid price format"
// @Failure      404  {object}  map[string]string "Item Not Found"
// @Router       /items/filter/{minPrice}/{maxPrice} [get]
func (h *ItemHandler) FilterItems(c *gin.Context) {
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable bound.
	min, err := strconv.ParseFloat(c.Param("minPrice"), 64)
	if err != nil || math.IsNaN(min) || math.IsInf(min, 0) {
		respondFieldErrors(c, http.StatusBadRequest, []validation.FieldError{
			{Field: "minPrice", Message: "Invalid price format"},
		})
		return
	}
	max, err := strconv.ParseFloat(c.Param("maxPrice"), 64)
	if err != nil || math.IsNaN(max) || math.IsInf(max, 0) {
		respondFieldErrors(c, http.StatusBadRequest, []validation.FieldError{
			{Field: "maxPrice", Message: "Invalid price format"},
		})
		return
	}

	items, err := h.controller.GetItemsByPriceRange(c.Request.Context(), min, max)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if items == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, items)
}
