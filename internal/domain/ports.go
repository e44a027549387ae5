package domain

// CatalogIndex holds the fixed recipe collection. Implementations are
// read-only after construction.
type CatalogIndex interface {
	// All returns the records in collection order.
	All() []RecipeRecord
	// FindByID resolves an id. A miss is a normal outcome, not an error.
	FindByID(id int) (RecipeRecord, bool)
}

// Renderer is the presentation collaborator. The filter engine calls it
// synchronously after every state transition that changes what is shown.
// Implementations can draw to a terminal, collect output for tests, or do
// nothing.
type Renderer interface {
	RenderList(view ListView)
	RenderDetail(detail Detail)
	ResetScroll()
}
