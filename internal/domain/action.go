package domain

// ActionType classifies what the user asked the browser to do.
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionSearch
	ActionToggleTag
	ActionClear
	ActionSelect
	ActionHelp
	ActionQuit
)

// String returns a human-readable action type.
func (a ActionType) String() string {
	switch a {
	case ActionSearch:
		return "search"
	case ActionToggleTag:
		return "toggle_tag"
	case ActionClear:
		return "clear"
	case ActionSelect:
		return "select"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a parsed user command.
type Action struct {
	Type ActionType

	Query    string   // search text for ActionSearch
	Category Category // for ActionToggleTag
	Value    TagValue // for ActionToggleTag
	ID       int      // for ActionSelect

	// Payload carries the raw input for ActionUnknown, so the caller can
	// tell the user what was not understood.
	Payload string
}
