// Package handler provides HTTP handlers for the cart feature.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yoga_storefront/internal/feature/cart/domain/entity"
	"yoga_storefront/internal/feature/cart/transport/http/dto"
	"yoga_storefront/internal/shared/notice"
)

// CartUsecase defines the cart operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type CartUsecase interface {
	Items() []entity.CartItem
	Remove(classID int64) bool
	Clear()
}

// CartHandler handles HTTP requests for the in-memory cart.
type CartHandler struct {
	cart CartUsecase
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart CartUsecase) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get returns the cart items in insertion order with their total.
//
// GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCartRes(h.cart.Items()))
}

// Remove deletes a class from the cart. Removing an absent class is a no-op.
//
// DELETE /cart/:classId
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, notice.Failed(notice.Fail("invalid class id")))
		return
	}

	removed := h.cart.Remove(id)
	res := dto.NewCartRes(h.cart.Items())
	if removed {
		n := notice.Info("Removed class from cart")
		res.Notice = &n
	}
	c.JSON(http.StatusOK, res)
}

// Clear empties the cart.
//
// DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, dto.NewCartRes(nil))
}
