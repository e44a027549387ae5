// Package tagmeta maps (category, value) pairs to display glyphs and
// style classes. Pairs outside the table have no metadata and are left out
// of rendered tag lists.
package tagmeta

import "github.com/hammamikhairi/recipebrowser/internal/domain"

type entry struct {
	value domain.TagValue
	meta  domain.TagMeta
}

// table lists the known vocabulary per category, in display order.
var table = [domain.CategoryCount][]entry{
	domain.CategoryTaste: {
		{domain.TasteSweet, domain.TagMeta{Glyph: "🍰", Class: "taste-sweet"}},
		{domain.TasteSavory, domain.TagMeta{Glyph: "🍖", Class: "taste-savory"}},
	},
	domain.CategoryMeal: {
		{domain.MealBreakfast, domain.TagMeta{Glyph: "☀️"}},
		{domain.MealLunchDinner, domain.TagMeta{Glyph: "🌙"}},
	},
	domain.CategoryTime: {
		{domain.TimeQuick, domain.TagMeta{Glyph: "⚡", Class: "time-quick"}},
		{domain.TimeMedium, domain.TagMeta{Glyph: "⏰"}},
		{domain.TimeLong, domain.TagMeta{Glyph: "⏳"}},
	},
	domain.CategoryIngredient: {
		{domain.IngredientPork, domain.TagMeta{Glyph: "🐷"}},
		{domain.IngredientChicken, domain.TagMeta{Glyph: "🐔"}},
		{domain.IngredientPoultry, domain.TagMeta{Glyph: "🍗"}},
		{domain.IngredientFish, domain.TagMeta{Glyph: "🐟"}},
		{domain.IngredientBeef, domain.TagMeta{Glyph: "🐄"}},
		{domain.IngredientSeafood, domain.TagMeta{Glyph: "🍤"}},
		{domain.IngredientVegetable, domain.TagMeta{Glyph: "🥬"}},
		{domain.IngredientOther, domain.TagMeta{Glyph: "🍢"}},
	},
}

// Lookup returns the metadata for (c, v). The empty value and pairs not in
// the table report false.
func Lookup(c domain.Category, v domain.TagValue) (domain.TagMeta, bool) {
	if !c.Valid() || v == "" {
		return domain.TagMeta{}, false
	}
	for _, e := range table[c] {
		if e.value == v {
			return e.meta, true
		}
	}
	return domain.TagMeta{}, false
}

// Values returns the known values of c in display order.
func Values(c domain.Category) []domain.TagValue {
	if !c.Valid() {
		return nil
	}
	out := make([]domain.TagValue, 0, len(table[c]))
	for _, e := range table[c] {
		out = append(out, e.value)
	}
	return out
}

// Resolve builds the badge list for a recipe's tags, in category order.
// Null and unmapped values contribute nothing.
func Resolve(tags domain.Tags) []domain.TagBadge {
	var out []domain.TagBadge
	for _, c := range domain.Categories() {
		v, ok := tags.Get(c)
		if !ok {
			continue
		}
		meta, ok := Lookup(c, v)
		if !ok {
			continue
		}
		out = append(out, domain.TagBadge{Category: c, Value: v, TagMeta: meta})
	}
	return out
}
