package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		query string
		want  Category
	}{
		{"blue hoodie", CategoryOuterwear},
		{"White button-up shirt", CategoryTops},
		{"black jeans", CategoryBottoms},
		{"Gray dress pants", CategoryBottoms}, // "pant" wins over "dress"
		{"white sneakers", CategoryShoes},
		{"brown chelsea boots", CategoryShoes},
		{"Elegant floral dress", CategoryDresses},
		{"pleated midi skirt", CategorySkirts},
		{"red beanie", CategoryHats},
		{"straw hat", CategoryHats},
		{"silver watch", CategoryAccessories},
		{"tortoise shell sunglasses", CategoryAccessories},
		{"gray wool sweater", CategoryTops},
		{"beige chino shorts", CategoryBottoms},
		{"silver tie clip", CategoryClothing},
		{"", CategoryClothing},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.query))
		})
	}
}

func TestInferCategoryDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, CategoryOuterwear, InferCategory("black puffer jacket"))
	}
}

func TestInferCategoryPriorityOrder(t *testing.T) {
	// A query matching several rules resolves to the earliest one
	assert.Equal(t, CategoryTops, InferCategory("shirt jacket with watch print"))
}
