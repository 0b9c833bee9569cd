// Package entity defines the domain models for the cart feature.
package entity

import catalog "yoga_storefront/internal/feature/catalog/domain/entity"

// CartItem is a snapshot of a class taken at the time it was added to the cart.
// It does not follow later catalog changes.
type CartItem struct {
	ClassID   int64             `json:"classId"`
	ClassData catalog.YogaClass `json:"classData"`
}

// NewCartItem snapshots class into a cart item.
func NewCartItem(class catalog.YogaClass) CartItem {
	return CartItem{ClassID: class.ID, ClassData: class.Clone()}
}

// Total sums the snapshot prices of items.
func Total(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.ClassData.Price
	}
	return sum
}
