package handler

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/yummin/backend/internal/application/ledger"
)

// OrderHandler serves the append-only order ledger
type OrderHandler struct {
	BaseHandler
	ledger    *ledgerapp.Service
	idPrefix  string
	seedCount int
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(ledger *ledgerapp.Service, idPrefix string, seedCount int) *OrderHandler {
	return &OrderHandler{
		ledger:    ledger,
		idPrefix:  idPrefix,
		seedCount: seedCount,
	}
}

// RegisterRoutes registers ledger routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.DELETE("", h.Clear)
		orders.POST("/seed", h.Seed)
	}
}

// List returns ledger orders oldest first. With both start and end query
// parameters (RFC 3339) only orders inside the window are returned.
func (h *OrderHandler) List(c *gin.Context) {
	startRaw, hasStart := c.GetQuery("start")
	endRaw, hasEnd := c.GetQuery("end")

	if !hasStart && !hasEnd {
		h.Success(c, h.ledger.List(c.Request.Context()))
		return
	}
	if !hasStart || !hasEnd {
		h.BadRequest(c, "start and end must be provided together")
		return
	}

	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		h.BadRequest(c, "Invalid start timestamp, expected RFC 3339")
		return
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		h.BadRequest(c, "Invalid end timestamp, expected RFC 3339")
		return
	}
	if end.Before(start) {
		h.BadRequest(c, "end must not be before start")
		return
	}

	h.Success(c, h.ledger.ListRange(c.Request.Context(), start, end))
}

// Get returns a single ledger order by its ID
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.ledger.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, o)
}

// Clear wipes the ledger
func (h *OrderHandler) Clear(c *gin.Context) {
	if err := h.ledger.Clear(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// SeedResponse reports how many demo orders were written
type SeedResponse struct {
	Count int `json:"count"`
}

// Seed replaces the ledger with freshly generated demo orders
func (h *OrderHandler) Seed(c *gin.Context) {
	gen := ledgerapp.NewSeedGenerator(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		h.idPrefix,
		h.seedCount,
	)

	count, err := h.ledger.Seed(c.Request.Context(), gen)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, SeedResponse{Count: count})
}
