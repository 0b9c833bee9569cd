package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalog "yoga_storefront/internal/feature/catalog/domain/entity"
)

func TestNewCartItem(t *testing.T) {
	t.Parallel()

	class := catalog.YogaClass{ID: 1, Price: 20, Instances: []catalog.ClassInstance{{ID: 10, Teacher: "Ana"}}}

	item := NewCartItem(class)
	class.Instances[0].Teacher = "Bruno"

	assert.Equal(t, int64(1), item.ClassID)
	assert.Equal(t, "Ana", item.ClassData.Instances[0].Teacher)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []CartItem
		expected float64
	}{
		{"empty cart", nil, 0},
		{"single item", []CartItem{{ClassID: 1, ClassData: catalog.YogaClass{Price: 20}}}, 20},
		{"several items", []CartItem{
			{ClassID: 1, ClassData: catalog.YogaClass{Price: 20}},
			{ClassID: 2, ClassData: catalog.YogaClass{Price: 12.5}},
		}, 32.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, Total(tt.items), 1e-9)
		})
	}
}
