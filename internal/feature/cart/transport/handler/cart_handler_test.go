package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yoga_storefront/internal/feature/cart/domain/entity"
	"yoga_storefront/internal/feature/cart/transport/http/dto"
	"yoga_storefront/internal/feature/cart/usecase"
	catalog "yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

func setupRouter(cart CartUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(cart)
	r := gin.New()
	r.GET("/cart", h.Get)
	r.DELETE("/cart", h.Clear)
	r.DELETE("/cart/:classId", h.Remove)
	return r
}

func filledCart() *usecase.CartManager {
	cart := usecase.NewCartManager()
	cart.Add(entity.NewCartItem(catalog.YogaClass{ID: 1, Type: "Hatha", Price: 20}))
	cart.Add(entity.NewCartItem(catalog.YogaClass{ID: 2, Type: "Yin", Price: 15}))
	return cart
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) dto.CartRes {
	t.Helper()
	var res dto.CartRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestCartHandler_Get(t *testing.T) {
	router := setupRouter(filledCart())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	res := decodeCart(t, w)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 35.0, res.Total)
	assert.Equal(t, int64(1), res.Items[0].ClassID)
	assert.Equal(t, "Yin", res.Items[1].ClassData.Type)
	assert.Nil(t, res.Notice)
}

func TestCartHandler_GetEmpty(t *testing.T) {
	router := setupRouter(usecase.NewCartManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"count":0,"total":0}`, w.Body.String())
}

func TestCartHandler_Remove(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedCount  int
		expectNotice   bool
	}{
		{name: "removes present class", path: "/cart/1", expectedStatus: http.StatusOK, expectedCount: 1, expectNotice: true},
		{name: "absent class is a no-op", path: "/cart/99", expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "invalid id", path: "/cart/abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := filledCart()
			router := setupRouter(cart)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, 2, cart.Len())
				return
			}
			res := decodeCart(t, w)
			assert.Equal(t, tt.expectedCount, res.Count)
			assert.Equal(t, tt.expectedCount, cart.Len())
			if tt.expectNotice {
				require.NotNil(t, res.Notice)
				assert.Equal(t, notice.Info("Removed class from cart"), *res.Notice)
			} else {
				assert.Nil(t, res.Notice)
			}
		})
	}
}

func TestCartHandler_Clear(t *testing.T) {
	cart := filledCart()
	router := setupRouter(cart)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeCart(t, w).Count)
	assert.Equal(t, 0, cart.Len())
}
