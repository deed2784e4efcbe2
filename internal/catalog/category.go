package catalog

import "strings"

// Category is a garment slot label. The set is closed: InferCategory always
// returns one of the constants below.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryShoes       Category = "shoes"
	CategoryOuterwear   Category = "outerwear"
	CategoryDresses     Category = "dresses"
	CategorySkirts      Category = "skirts"
	CategoryHats        Category = "hats"
	CategoryAccessories Category = "accessories"
	CategoryClothing    Category = "clothing"
)

type categoryRule struct {
	keywords []string
	category Category
}

// categoryRules are evaluated in order; the first rule with a matching
// keyword wins. Order matters: "dress pants" must hit bottoms, not dresses.
var categoryRules = []categoryRule{
	{[]string{"shirt", "top", "tee", "blouse", "sweater"}, CategoryTops},
	{[]string{"pant", "jean", "trouser", "chino", "short"}, CategoryBottoms},
	{[]string{"shoe", "sneaker", "boot", "sandal", "loafer"}, CategoryShoes},
	{[]string{"jacket", "coat", "hoodie", "blazer", "windbreaker"}, CategoryOuterwear},
	{[]string{"dress"}, CategoryDresses},
	{[]string{"skirt"}, CategorySkirts},
	{[]string{"hat", "cap", "beanie", "fedora"}, CategoryHats},
	{[]string{"accessory", "watch", "jewelry", "sunglasses"}, CategoryAccessories},
}

// InferCategory classifies a garment description by keyword substring match.
// It is deterministic and total: unmatched queries fall back to
// CategoryClothing.
func InferCategory(query string) Category {
	q := strings.ToLower(query)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(q, keyword) {
				return rule.category
			}
		}
	}
	return CategoryClothing
}
