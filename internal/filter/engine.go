// Package filter implements the browsing core: the visibility predicate
// and the engine owning the filter and selection state of one session.
package filter

import (
	"slices"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/instructions"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
	"github.com/hammamikhairi/recipebrowser/internal/tagmeta"
)

// Option configures the engine.
type Option func(*Engine)

// WithRenderer sets the presentation collaborator notified after every
// state transition.
func WithRenderer(r domain.Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithPipeline replaces the instruction formatting pipeline.
func WithPipeline(p instructions.Pipeline) Option {
	return func(e *Engine) {
		e.pipeline = p
	}
}

// Engine owns the filter state of one browsing session. It is not safe for
// concurrent use; every method runs to completion, including the renderer
// calls it triggers, before returning.
type Engine struct {
	id       string
	catalog  domain.CatalogIndex
	records  []domain.RecipeRecord
	renderer domain.Renderer
	pipeline instructions.Pipeline
	log      *logger.Logger

	state   domain.FilterState
	visible []domain.RecipeRecord
}

// New creates an engine over the catalog with an empty filter state.
func New(catalog domain.CatalogIndex, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		id:       uuid.NewString(),
		catalog:  catalog,
		records:  catalog.All(),
		renderer: nopRenderer{},
		pipeline: instructions.Default,
		log:      log,
		state:    domain.NewFilterState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.visible = ComputeVisible(e.records, e.state)
	log.Debug("session %s started with %d recipes", e.id, len(e.records))
	return e
}

// ID returns the session id used in log lines.
func (e *Engine) ID() string { return e.id }

// Refresh recomputes the visible set and redraws the list.
func (e *Engine) Refresh() {
	e.visible = ComputeVisible(e.records, e.state)
	e.renderer.RenderList(e.ListView())
}

// SetSearchQuery replaces the search query and redraws the list.
func (e *Engine) SetSearchQuery(q string) {
	e.state.SetQuery(q)
	e.Refresh()
	e.log.Debug("session %s search %q -> %d visible", e.id, q, len(e.visible))
}

// ToggleFilter flips the (c, v) filter and redraws the list. It reports
// false, changing nothing, when c is not a valid category.
func (e *Engine) ToggleFilter(c domain.Category, v domain.TagValue) bool {
	if !e.state.Toggle(c, v) {
		e.log.Warn("session %s ignoring toggle for invalid category %d", e.id, int(c))
		return false
	}
	e.Refresh()
	e.log.Debug("session %s toggle %s=%s (on=%v) -> %d visible", e.id, c, v, e.state.Has(c, v), len(e.visible))
	return true
}

// ClearFilters empties every filter and the search query, keeps the
// selection, and redraws the list.
func (e *Engine) ClearFilters() {
	e.state.Clear()
	e.Refresh()
	e.log.Debug("session %s filters cleared", e.id)
}

// SelectRecipe makes id the current selection, redraws the list
// highlight, builds the detail view and resets the scroll position.
// Unknown ids change nothing and report false.
func (e *Engine) SelectRecipe(id int) bool {
	r, ok := e.catalog.FindByID(id)
	if !ok {
		e.log.Debug("session %s ignoring selection of unknown recipe %d", e.id, id)
		return false
	}

	e.state.Select(id)
	e.renderer.RenderList(e.ListView())
	e.renderer.RenderDetail(e.buildDetail(r))
	e.renderer.ResetScroll()

	e.log.Debug("session %s selected recipe %d (%s)", e.id, r.ID, r.Name)
	return true
}

// OnSearchInput handles typed search text.
func (e *Engine) OnSearchInput(text string) { e.SetSearchQuery(text) }

// OnTagToggle handles a tag click. Unknown category keys are ignored.
func (e *Engine) OnTagToggle(category, value string) {
	c, ok := domain.CategoryFromString(category)
	if !ok {
		e.log.Warn("session %s ignoring toggle for unknown category %q", e.id, category)
		return
	}
	e.ToggleFilter(c, domain.TagValue(value))
}

// OnClear handles the clear button.
func (e *Engine) OnClear() { e.ClearFilters() }

// OnItemActivate handles a click on a list item.
func (e *Engine) OnItemActivate(id int) { e.SelectRecipe(id) }

// VisibleRecipes returns a copy of the current visible set.
func (e *Engine) VisibleRecipes() []domain.RecipeRecord {
	return slices.Clone(e.visible)
}

// SelectedID returns the current selection, if any.
func (e *Engine) SelectedID() (int, bool) {
	return e.state.SelectedID()
}

// State returns a snapshot of the filter state.
func (e *Engine) State() domain.FilterState {
	return e.state.Clone()
}

// ListView returns the visible set with the selection highlight.
func (e *Engine) ListView() domain.ListView {
	id, ok := e.state.SelectedID()
	return domain.ListView{
		Items:        slices.Clone(e.visible),
		SelectedID:   id,
		HasSelection: ok,
	}
}

// Detail returns the detail view of the current selection.
func (e *Engine) Detail() (domain.Detail, bool) {
	id, ok := e.state.SelectedID()
	if !ok {
		return domain.Detail{}, false
	}
	r, ok := e.catalog.FindByID(id)
	if !ok {
		return domain.Detail{}, false
	}
	return e.buildDetail(r), true
}

// TagDisplayMeta returns the glyph and style class of a tag.
func (e *Engine) TagDisplayMeta(c domain.Category, v domain.TagValue) (domain.TagMeta, bool) {
	return tagmeta.Lookup(c, v)
}

// FormatInstructions runs text through the engine's pipeline.
func (e *Engine) FormatInstructions(text string) string {
	return e.pipeline.Apply(text)
}

func (e *Engine) buildDetail(r domain.RecipeRecord) domain.Detail {
	return domain.Detail{
		Recipe:       r,
		Badges:       tagmeta.Resolve(r.Tags),
		Instructions: e.FormatInstructions(r.Instructions),
	}
}
