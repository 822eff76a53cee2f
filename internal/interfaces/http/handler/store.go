package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yummin/backend/internal/domain/store"
)

// StoreHandler serves store-level information such as opening hours
type StoreHandler struct {
	BaseHandler
	now func() time.Time
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler() *StoreHandler {
	return &StoreHandler{now: time.Now}
}

// RegisterRoutes registers store routes on the given group
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/store/status", h.GetStatus)
}

// GetStatus reports whether the store is open right now
func (h *StoreHandler) GetStatus(c *gin.Context) {
	h.Success(c, store.StatusAt(h.now()))
}
