// Package intent maps one user utterance plus the current conversation
// context onto a discrete shopping intent. Classification is a fixed
// priority-ordered rule list; the first matching rule wins. An outstanding
// size question is answered before anything else, and a bare affirmative
// only counts right after products were shown.
package intent

type Type string

const (
	TypeSizeResponse   Type = "size_response"
	TypeAddToCart      Type = "add_to_cart"
	TypeHaggle         Type = "haggle"
	TypeFilter         Type = "filter"
	TypeSearch         Type = "search"
	TypeInventoryCheck Type = "inventory_check"
	TypeRecommend      Type = "recommendations"
	TypeGeneral        Type = "general"
)

// Context is the classifier's read-only view of the conversation state.
type Context struct {
	PendingSize bool
	ShownCount  int
	ShownNames  []string
}

// Intent carries the classified type plus whatever entities the matching
// rule extracted from the utterance.
type Intent struct {
	Type Type
	Rule string

	// add_to_cart / size_response
	Size        string // canonical size token if one appeared in the message
	Ordinal     int    // 1-based index into last shown products; -1 means last; 0 unset
	ProductHint string // matched product name from context

	// filter
	SortOrder string // "asc" | "desc"

	Query string // original message, for search-like handlers
}
