// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

// RecipeRecord is a single catalog entry. Records are loaded once and
// never mutated afterwards.
type RecipeRecord struct {
	ID           int
	Name         string
	Icon         string
	Image        string // opaque resource reference, passed through untouched
	Instructions string
	Tags         Tags
}

// Category is one of the fixed tag dimensions.
type Category int

const (
	CategoryTaste Category = iota
	CategoryMeal
	CategoryTime
	CategoryIngredient

	// CategoryCount is the number of categories. Not a valid category.
	CategoryCount
)

// String returns the category key as used in catalog files and commands.
func (c Category) String() string {
	switch c {
	case CategoryTaste:
		return "taste"
	case CategoryMeal:
		return "meal"
	case CategoryTime:
		return "time"
	case CategoryIngredient:
		return "ingredient"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool {
	return c >= 0 && c < CategoryCount
}

// categoryNames maps category keys to Category values.
var categoryNames = map[string]Category{
	"taste":      CategoryTaste,
	"meal":       CategoryMeal,
	"time":       CategoryTime,
	"ingredient": CategoryIngredient,
}

// CategoryFromString converts a category key to a Category.
func CategoryFromString(name string) (Category, bool) {
	c, ok := categoryNames[name]
	return c, ok
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryTaste, CategoryMeal, CategoryTime, CategoryIngredient}
}

// TagValue is a value within a category, e.g. "甜食" under taste.
type TagValue string

// Built-in tag vocabulary.
const (
	TasteSweet  TagValue = "甜食"
	TasteSavory TagValue = "鹹食"

	MealBreakfast   TagValue = "早餐"
	MealLunchDinner TagValue = "午晚餐"

	TimeQuick  TagValue = "<30m"
	TimeMedium TagValue = "30m-1h"
	TimeLong   TagValue = ">1h"

	IngredientPork      TagValue = "豬肉"
	IngredientChicken   TagValue = "雞肉"
	IngredientPoultry   TagValue = "禽肉"
	IngredientFish      TagValue = "魚肉"
	IngredientBeef      TagValue = "牛肉"
	IngredientSeafood   TagValue = "海鮮"
	IngredientVegetable TagValue = "蔬食"
	IngredientOther     TagValue = "其他"
)

// Tags holds one value per category, indexed by Category. The empty value
// means the category does not apply to the recipe.
type Tags [CategoryCount]TagValue

// Get returns the value for c and whether it is set.
func (t Tags) Get(c Category) (TagValue, bool) {
	if !c.Valid() || t[c] == "" {
		return "", false
	}
	return t[c], true
}
