// Package dto defines data transfer objects for the cart feature's HTTP transport layer.
package dto

import (
	"yoga_storefront/internal/feature/cart/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

// CartRes represents the current cart contents.
type CartRes struct {
	Items  []entity.CartItem `json:"items"`
	Count  int               `json:"count"`
	Total  float64           `json:"total"`
	Notice *notice.Notice    `json:"notice,omitempty"`
}

// NewCartRes builds a CartRes from an ordered snapshot of items.
func NewCartRes(items []entity.CartItem) CartRes {
	if items == nil {
		items = []entity.CartItem{}
	}
	return CartRes{Items: items, Count: len(items), Total: entity.Total(items)}
}
