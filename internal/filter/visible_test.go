package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
)

func fixtureRecords() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{ID: 1, Name: "蛋炒飯", Tags: domain.Tags{
			domain.CategoryTaste: domain.TasteSavory,
			domain.CategoryMeal:  domain.MealLunchDinner,
			domain.CategoryTime:  domain.TimeQuick,
		}},
		{ID: 2, Name: "提拉米蘇", Tags: domain.Tags{
			domain.CategoryTaste: domain.TasteSweet,
			domain.CategoryTime:  domain.TimeLong,
		}},
		{ID: 3, Name: "French Toast", Tags: domain.Tags{
			domain.CategoryTaste:      domain.TasteSweet,
			domain.CategoryMeal:       domain.MealBreakfast,
			domain.CategoryTime:       domain.TimeQuick,
			domain.CategoryIngredient: domain.IngredientOther,
		}},
		{ID: 4, Name: "鮮蝦粥", Tags: domain.Tags{
			domain.CategoryTaste:      domain.TasteSavory,
			domain.CategoryMeal:       domain.MealBreakfast,
			domain.CategoryIngredient: domain.IngredientSeafood,
		}},
	}
}

type toggle struct {
	c domain.Category
	v domain.TagValue
}

func ids(records []domain.RecipeRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestComputeVisible(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		toggles []toggle
		want    []int
	}{
		{name: "empty state shows all in order", want: []int{1, 2, 3, 4}},
		{name: "name substring", query: "蛋", want: []int{1}},
		{name: "query is trimmed", query: "  粥 ", want: []int{4}},
		{name: "query is case-insensitive", query: "TOAST", want: []int{3}},
		{name: "query matches tag value", query: "甜", want: []int{2, 3}},
		{name: "query matches time tag", query: "<30", want: []int{1, 3}},
		{name: "whitespace query matches all", query: "   ", want: []int{1, 2, 3, 4}},
		{name: "no match", query: "披薩", want: []int{}},
		{name: "category keys are not searched", query: "taste", want: []int{}},
		{
			name:    "single tag",
			toggles: []toggle{{domain.CategoryTaste, domain.TasteSweet}},
			want:    []int{2, 3},
		},
		{
			name: "values within a category are or-ed",
			toggles: []toggle{
				{domain.CategoryTaste, domain.TasteSweet},
				{domain.CategoryTaste, domain.TasteSavory},
			},
			want: []int{1, 2, 3, 4},
		},
		{
			name: "categories are and-ed",
			toggles: []toggle{
				{domain.CategoryTaste, domain.TasteSavory},
				{domain.CategoryMeal, domain.MealBreakfast},
			},
			want: []int{4},
		},
		{
			name: "or within matches but another category excludes",
			toggles: []toggle{
				{domain.CategoryTaste, domain.TasteSweet},
				{domain.CategoryTaste, domain.TasteSavory},
				{domain.CategoryTime, domain.TimeLong},
			},
			want: []int{2},
		},
		{
			name:    "null tag in an active category excludes",
			toggles: []toggle{{domain.CategoryMeal, domain.MealLunchDinner}},
			want:    []int{1},
		},
		{
			name:    "null ingredient excluded",
			toggles: []toggle{{domain.CategoryIngredient, domain.IngredientOther}},
			want:    []int{3},
		},
		{
			name:    "value outside vocabulary matches nothing",
			toggles: []toggle{{domain.CategoryTaste, "甜"}},
			want:    []int{},
		},
		{
			name:    "search and tags combine",
			query:   "toast",
			toggles: []toggle{{domain.CategoryTaste, domain.TasteSavory}},
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewFilterState()
			state.SetQuery(tt.query)
			for _, tg := range tt.toggles {
				state.Toggle(tg.c, tg.v)
			}

			got := ids(ComputeVisible(fixtureRecords(), state))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("visible ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchMatchesTagValue(t *testing.T) {
	records := []domain.RecipeRecord{
		{ID: 1, Name: "三杯料理", Tags: domain.Tags{domain.CategoryIngredient: domain.IngredientChicken}},
		{ID: 2, Name: "蒜泥白肉", Tags: domain.Tags{domain.CategoryIngredient: domain.IngredientPork}},
	}
	state := domain.NewFilterState()
	state.SetQuery("雞")

	if diff := cmp.Diff([]int{1}, ids(ComputeVisible(records, state))); diff != "" {
		t.Fatalf("visible ids (-want +got):\n%s", diff)
	}
}

func TestComputeVisibleNeverNil(t *testing.T) {
	if got := ComputeVisible(nil, domain.NewFilterState()); got == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

func TestComputeVisibleSubset(t *testing.T) {
	records := fixtureRecords()
	state := domain.NewFilterState()
	state.Toggle(domain.CategoryTime, domain.TimeQuick)

	got := ComputeVisible(records, state)
	for _, r := range got {
		if _, ok := indexOf(records, r.ID); !ok {
			t.Fatalf("visible record %d not in input", r.ID)
		}
	}

	// Toggling twice restores the original result.
	state.Toggle(domain.CategoryTime, domain.TimeQuick)
	if diff := cmp.Diff(ids(records), ids(ComputeVisible(records, state))); diff != "" {
		t.Fatalf("double toggle changed the result (-want +got):\n%s", diff)
	}
}

func indexOf(records []domain.RecipeRecord, id int) (int, bool) {
	for i, r := range records {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}
