package filter

import "github.com/hammamikhairi/recipebrowser/internal/domain"

// Compile-time interface check.
var _ domain.Renderer = nopRenderer{}

// nopRenderer draws nothing. Used when no presentation layer is attached,
// e.g. by the non-interactive commands.
type nopRenderer struct{}

func (nopRenderer) RenderList(domain.ListView)  {}
func (nopRenderer) RenderDetail(domain.Detail) {}
func (nopRenderer) ResetScroll()               {}
