package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/yummin/backend/internal/application/cart"
	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/shared"
	"github.com/yummin/backend/internal/interfaces/http/dto"
)

// memCartStore is an in-memory cart snapshot store
type memCartStore struct {
	snap *cart.Snapshot
}

func (m *memCartStore) Save(ctx context.Context, snap cart.Snapshot) error {
	m.snap = &snap
	return nil
}

func (m *memCartStore) Load(ctx context.Context) (cart.Snapshot, error) {
	if m.snap == nil {
		return cart.Snapshot{}, shared.ErrNotFound
	}
	return *m.snap, nil
}

func (m *memCartStore) Delete(ctx context.Context) error {
	m.snap = nil
	return nil
}

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := cartapp.NewService(context.Background(), &memCartStore{}, zap.NewNop())
	return newTestRouter(NewCartHandler(svc))
}

func cartData(t *testing.T, resp dto.Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestCartHandler_EmptyCart(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(0), data["total_items"])
	assert.Equal(t, float64(0), data["final_price"])
}

func TestCartHandler_AddItem(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(1), data["total_items"])
	assert.Equal(t, float64(109), data["subtotal"])
}

func TestCartHandler_AddItemUnknown(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"999"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestCartHandler_AddItemMissingBody(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/items", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)

	w := doRequest(r, http.MethodPatch, "/api/v1/cart/items/1", `{"delta":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(3), data["total_items"])
}

func TestCartHandler_UpdateQuantityRemovesAtZero(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)

	w := doRequest(r, http.MethodPatch, "/api/v1/cart/items/1", `{"delta":-1}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(0), data["total_items"])
}

func TestCartHandler_RemoveItem(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"2"}`)

	w := doRequest(r, http.MethodDelete, "/api/v1/cart/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(1), data["total_items"])
}

func TestCartHandler_Clear(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)

	w := doRequest(r, http.MethodDelete, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(0), data["total_items"])
}

func TestCartHandler_ApplyCoupon(t *testing.T) {
	r := newCartRouter(t)
	// two chocolate shakes plus one oreo, subtotal 347
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"2"}`)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"WELCOME10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(347), data["subtotal"])
	assert.Equal(t, float64(35), data["discount"])
	assert.Equal(t, float64(312), data["final_price"])
}

func TestCartHandler_ApplyCouponInvalid(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"NOPE"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInvalidCoupon, resp.Error.Code)
}

func TestCartHandler_ApplyCouponEmptyCart(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"WELCOME10"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeEmptyCart, resp.Error.Code)
}

func TestCartHandler_RemoveCoupon(t *testing.T) {
	r := newCartRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/cart/items", `{"item_id":"1"}`)
	doRequest(r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"WELCOME10"}`)

	w := doRequest(r, http.MethodDelete, "/api/v1/cart/coupon", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, decodeResponse(t, w))
	assert.Equal(t, float64(0), data["discount"])
	assert.Nil(t, data["coupon"])
}

func TestCartHandler_ListCoupons(t *testing.T) {
	r := newCartRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/cart/coupons", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	coupons, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, coupons, 2)
}
