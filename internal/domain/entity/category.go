// Package entity defines the core business entities for the domain layer.
package entity

// Category is the closed set of spending categories. Aggregation keys on the
// tag only; display metadata lives in the lookup table below.
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryGames    Category = "Games"
	CategoryShopping Category = "Shopping"
	CategoryTravel   Category = "Travel"
	CategoryBills    Category = "Bills"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll Category = "All"

// AllCategories lists every valid category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryGames,
		CategoryShopping,
		CategoryTravel,
		CategoryBills,
		CategoryHealth,
		CategoryOther,
	}
}

// IsValidCategory reports whether c is a member of the closed category set.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryFood, CategoryGames, CategoryShopping, CategoryTravel,
		CategoryBills, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

// CategoryMeta holds display metadata for a category.
type CategoryMeta struct {
	Label string
	Color string
	Icon  string
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryFood:     {Label: "Food", Color: "#0088FE", Icon: "utensils"},
	CategoryGames:    {Label: "Games", Color: "#00C49F", Icon: "gamepad"},
	CategoryShopping: {Label: "Shopping", Color: "#FFBB28", Icon: "shopping-bag"},
	CategoryTravel:   {Label: "Travel", Color: "#FF8042", Icon: "plane"},
	CategoryBills:    {Label: "Bills", Color: "#8884d8", Icon: "file-text"},
	CategoryHealth:   {Label: "Health", Color: "#82ca9d", Icon: "heart-pulse"},
	CategoryOther:    {Label: "Other", Color: "#6B7280", Icon: "tag"},
}

// MetaFor returns display metadata for a category. Unknown categories fall
// back to Other's metadata with their own literal label, so a stray value
// coming out of the store never breaks rendering.
func MetaFor(c Category) CategoryMeta {
	if meta, ok := categoryMeta[c]; ok {
		return meta
	}
	fallback := categoryMeta[CategoryOther]
	fallback.Label = string(c)
	return fallback
}
