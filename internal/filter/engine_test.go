package filter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipebrowser/internal/catalog"
	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

// recorder captures renderer calls in order.
type recorder struct {
	calls   []string
	lists   []domain.ListView
	details []domain.Detail
}

func (r *recorder) RenderList(v domain.ListView) {
	r.calls = append(r.calls, "list")
	r.lists = append(r.lists, v)
}

func (r *recorder) RenderDetail(d domain.Detail) {
	r.calls = append(r.calls, "detail")
	r.details = append(r.details, d)
}

func (r *recorder) ResetScroll() {
	r.calls = append(r.calls, "scroll")
}

func (r *recorder) lastList(t *testing.T) domain.ListView {
	t.Helper()
	if len(r.lists) == 0 {
		t.Fatal("no list rendered")
	}
	return r.lists[len(r.lists)-1]
}

func setupEngine(t *testing.T, records []domain.RecipeRecord) (*Engine, *recorder) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	idx, err := catalog.NewMemoryIndex(records, log)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	rec := &recorder{}
	return New(idx, log, WithRenderer(rec)), rec
}

func twoRecords() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{ID: 1, Name: "蛋炒飯", Instructions: "【步驟】1. 炒", Tags: domain.Tags{
			domain.CategoryTaste: domain.TasteSavory,
		}},
		{ID: 2, Name: "提拉米蘇", Tags: domain.Tags{
			domain.CategoryTaste: domain.TasteSweet,
			domain.CategoryTime:  domain.TimeLong,
		}},
	}
}

func TestNewEngineShowsEverything(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	if eng.ID() == "" {
		t.Fatal("session id is empty")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("constructor rendered: %v", rec.calls)
	}
	if diff := cmp.Diff([]int{1, 2}, ids(eng.VisibleRecipes())); diff != "" {
		t.Fatalf("initial visible (-want +got):\n%s", diff)
	}
	if _, ok := eng.SelectedID(); ok {
		t.Fatal("expected no selection")
	}
	if _, ok := eng.Detail(); ok {
		t.Fatal("expected no detail")
	}

	eng.Refresh()
	if diff := cmp.Diff([]string{"list"}, rec.calls); diff != "" {
		t.Fatalf("refresh calls (-want +got):\n%s", diff)
	}
}

func TestBrowseScenario(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	steps := []struct {
		name string
		act  func()
		want []int
	}{
		{"toggle sweet", func() { eng.OnTagToggle("taste", "甜食") }, []int{2}},
		{"search rice", func() { eng.OnSearchInput("飯") }, []int{}},
		{"clear", func() { eng.OnClear() }, []int{1, 2}},
	}

	for _, s := range steps {
		before := len(rec.lists)
		s.act()
		if len(rec.lists) != before+1 {
			t.Fatalf("%s: expected exactly one list render, got %d", s.name, len(rec.lists)-before)
		}
		if diff := cmp.Diff(s.want, ids(rec.lastList(t).Items)); diff != "" {
			t.Fatalf("%s: rendered ids (-want +got):\n%s", s.name, diff)
		}
		if diff := cmp.Diff(s.want, ids(eng.VisibleRecipes())); diff != "" {
			t.Fatalf("%s: visible ids (-want +got):\n%s", s.name, diff)
		}
	}

	if !eng.State().IsEmpty() {
		t.Fatal("expected empty state after clear")
	}
}

func TestToggleFilter(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	if !eng.ToggleFilter(domain.CategoryTaste, domain.TasteSweet) {
		t.Fatal("valid toggle reported false")
	}
	if !eng.State().Has(domain.CategoryTaste, domain.TasteSweet) {
		t.Fatal("value not active after toggle")
	}

	if !eng.ToggleFilter(domain.CategoryTaste, domain.TasteSweet) {
		t.Fatal("second toggle reported false")
	}
	if !eng.State().IsEmpty() {
		t.Fatal("double toggle did not restore the empty state")
	}
	if diff := cmp.Diff([]int{1, 2}, ids(eng.VisibleRecipes())); diff != "" {
		t.Fatalf("visible after double toggle (-want +got):\n%s", diff)
	}

	calls := len(rec.calls)
	if eng.ToggleFilter(domain.CategoryCount, domain.TasteSweet) {
		t.Fatal("invalid category toggle reported true")
	}
	if len(rec.calls) != calls {
		t.Fatal("invalid toggle rendered")
	}
}

func TestOnTagToggleUnknownCategory(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	eng.OnTagToggle("colour", "red")
	if len(rec.calls) != 0 {
		t.Fatalf("unknown category rendered: %v", rec.calls)
	}
	if !eng.State().IsEmpty() {
		t.Fatal("unknown category changed the state")
	}
}

func TestSelectRecipe(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	if !eng.SelectRecipe(1) {
		t.Fatal("select of a known id reported false")
	}
	if diff := cmp.Diff([]string{"list", "detail", "scroll"}, rec.calls); diff != "" {
		t.Fatalf("select calls (-want +got):\n%s", diff)
	}

	view := rec.lastList(t)
	if !view.IsSelected(1) || view.IsSelected(2) {
		t.Fatalf("highlight wrong: %+v", view)
	}

	d := rec.details[0]
	if d.Recipe.ID != 1 {
		t.Fatalf("detail for %d, want 1", d.Recipe.ID)
	}
	if len(d.Badges) != 1 || d.Badges[0].Label() != "🍖 鹹食" {
		t.Fatalf("unexpected badges: %+v", d.Badges)
	}
	if !strings.Contains(d.Instructions, "<br><strong>1.</strong>") {
		t.Fatalf("instructions not formatted: %q", d.Instructions)
	}

	got, ok := eng.Detail()
	if !ok {
		t.Fatal("Detail reported no selection")
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("Detail differs from rendered detail (-want +got):\n%s", diff)
	}
}

func TestSelectUnknownID(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())
	eng.SelectRecipe(2)
	calls := len(rec.calls)

	for _, id := range []int{0, -1, 99} {
		if eng.SelectRecipe(id) {
			t.Fatalf("select %d reported true", id)
		}
		eng.OnItemActivate(id)
	}

	if len(rec.calls) != calls {
		t.Fatal("unknown id rendered")
	}
	if id, ok := eng.SelectedID(); !ok || id != 2 {
		t.Fatalf("selection changed to %d/%v", id, ok)
	}
}

func TestClearKeepsSelection(t *testing.T) {
	eng, rec := setupEngine(t, twoRecords())

	eng.SelectRecipe(2)
	eng.ToggleFilter(domain.CategoryTaste, domain.TasteSavory)
	eng.SetSearchQuery("飯")

	// The selected record is filtered out but stays selected.
	if id, ok := eng.SelectedID(); !ok || id != 2 {
		t.Fatalf("selection lost while filtered: %d/%v", id, ok)
	}

	eng.ClearFilters()
	if id, ok := eng.SelectedID(); !ok || id != 2 {
		t.Fatalf("selection lost on clear: %d/%v", id, ok)
	}
	view := rec.lastList(t)
	if !view.IsSelected(2) {
		t.Fatal("list rendered after clear has no highlight")
	}
	if diff := cmp.Diff([]int{1, 2}, ids(view.Items)); diff != "" {
		t.Fatalf("list after clear (-want +got):\n%s", diff)
	}
}

func TestStateIsSnapshot(t *testing.T) {
	eng, _ := setupEngine(t, twoRecords())
	eng.ToggleFilter(domain.CategoryTaste, domain.TasteSweet)

	s := eng.State()
	s.Toggle(domain.CategoryTaste, domain.TasteSavory)
	s.SetQuery("x")

	if eng.State().Has(domain.CategoryTaste, domain.TasteSavory) || eng.State().Query() != "" {
		t.Fatal("mutating the snapshot changed the engine")
	}
}

func TestTagDisplayMeta(t *testing.T) {
	eng, _ := setupEngine(t, twoRecords())

	meta, ok := eng.TagDisplayMeta(domain.CategoryTime, domain.TimeQuick)
	if !ok || meta.Glyph != "⚡" || meta.Class != "time-quick" {
		t.Fatalf("unexpected meta %+v/%v", meta, ok)
	}
	if _, ok := eng.TagDisplayMeta(domain.CategoryTaste, "辣"); ok {
		t.Fatal("unmapped value resolved")
	}
}

func TestSeededCatalogWithDefaultRenderer(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := New(catalog.NewSeededIndex(log), log)

	eng.OnTagToggle("meal", "早餐")
	for _, r := range eng.VisibleRecipes() {
		if v, _ := r.Tags.Get(domain.CategoryMeal); v != domain.MealBreakfast {
			t.Fatalf("recipe %d is not breakfast", r.ID)
		}
	}
	if !eng.SelectRecipe(1) {
		t.Fatal("select on seeded catalog failed")
	}
}
