// Package usecase implements the in-memory cart of the current session.
package usecase

import (
	"sync"

	"yoga_storefront/internal/feature/cart/domain/entity"
)

// CartManager owns the ordered set of cart items, keyed by class ID.
// State lives in memory for the lifetime of the process and is never persisted.
type CartManager struct {
	mu    sync.RWMutex
	items []entity.CartItem
}

// NewCartManager creates an empty cart.
func NewCartManager() *CartManager {
	return &CartManager{}
}

// Add appends item unless an item with the same class ID is already present.
// It returns true if the item was added.
func (c *CartManager) Add(item entity.CartItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if it.ClassID == item.ClassID {
			return false
		}
	}
	snapshot := item
	snapshot.ClassData = item.ClassData.Clone()
	c.items = append(c.items, snapshot)
	return true
}

// Remove deletes every item with classID. It returns true if anything was removed.
func (c *CartManager) Remove(classID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := false
	for _, it := range c.items {
		if it.ClassID == classID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	// 末尾の参照を解放
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = entity.CartItem{}
	}
	c.items = kept
	return removed
}

// Clear empties the cart unconditionally.
func (c *CartManager) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Items returns a copy of the cart in insertion order.
func (c *CartManager) Items() []entity.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.CartItem, len(c.items))
	for i, it := range c.items {
		out[i] = entity.CartItem{ClassID: it.ClassID, ClassData: it.ClassData.Clone()}
	}
	return out
}

// Len returns the number of items in the cart.
func (c *CartManager) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Contains reports whether a class is in the cart.
func (c *CartManager) Contains(classID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if it.ClassID == classID {
			return true
		}
	}
	return false
}

// Total returns the sum of the snapshot prices.
func (c *CartManager) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return entity.Total(c.items)
}
