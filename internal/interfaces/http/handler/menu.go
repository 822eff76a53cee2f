package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yummin/backend/internal/domain/catalog"
)

// MenuHandler serves the fixed menu catalog
type MenuHandler struct {
	BaseHandler
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// RegisterRoutes registers menu routes on the given group
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.List)
		menu.GET("/groups", h.ListGroups)
		menu.GET("/items/:id", h.GetItem)
	}
}

// List returns all menu items, optionally filtered by category
func (h *MenuHandler) List(c *gin.Context) {
	if raw, ok := c.GetQuery("category"); ok {
		category := catalog.Category(raw)
		if !category.IsValid() {
			h.BadRequest(c, "Unknown category: "+raw)
			return
		}
		h.Success(c, catalog.ItemsByCategory(category))
		return
	}
	h.Success(c, catalog.Items())
}

// ListGroups returns the menu grouped by category in display order
func (h *MenuHandler) ListGroups(c *gin.Context) {
	h.Success(c, catalog.Groups())
}

// GetItem returns a single menu item by ID
func (h *MenuHandler) GetItem(c *gin.Context) {
	item, ok := catalog.ItemByID(c.Param("id"))
	if !ok {
		h.NotFound(c, "Menu item not found")
		return
	}
	h.Success(c, item)
}
