package domain

// TagMeta is the display metadata of a (category, value) pair.
type TagMeta struct {
	Glyph string
	Class string // optional style class, empty for the default look
}

// TagBadge is a resolved tag ready to be drawn in a detail view.
type TagBadge struct {
	Category Category
	Value    TagValue
	TagMeta
}

// Label returns the glyph followed by the value, e.g. "⚡ <30m".
func (b TagBadge) Label() string {
	return b.Glyph + " " + string(b.Value)
}

// ListView is what the presentation layer needs to draw the recipe list.
type ListView struct {
	Items        []RecipeRecord
	SelectedID   int
	HasSelection bool
}

// IsSelected reports whether the record with id is the highlighted one.
func (v ListView) IsSelected(id int) bool {
	return v.HasSelection && v.SelectedID == id
}

// Detail is the constructed detail view of the selected recipe.
type Detail struct {
	Recipe       RecipeRecord
	Badges       []TagBadge
	Instructions string // formatted markup
}
