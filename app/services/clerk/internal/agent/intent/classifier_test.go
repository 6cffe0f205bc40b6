package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriorityOrder(t *testing.T) {
	shown := Context{ShownCount: 3, ShownNames: []string{"Leather Boots", "Canvas Tote", "Wool Sweater"}}
	pending := Context{PendingSize: true, ShownCount: 3, ShownNames: shown.ShownNames}

	tests := []struct {
		name    string
		message string
		ctx     Context
		want    Type
	}{
		{"bare numeric size with pending", "42", pending, TypeSizeResponse},
		{"bare letter size with pending", "M", pending, TypeSizeResponse},
		{"word size with pending", "medium", pending, TypeSizeResponse},
		{"size with prefix", "size: L", pending, TypeSizeResponse},
		{"size without pending is not a size response", "42", Context{}, TypeGeneral},
		{"affirmative with products shown", "yes", shown, TypeAddToCart},
		{"affirmative add it", "add it!", shown, TypeAddToCart},
		{"affirmative without context is general", "yes", Context{}, TypeGeneral},
		{"ordinal add", "add the first one", shown, TypeAddToCart},
		{"named add", "buy the canvas tote", shown, TypeAddToCart},
		{"occasion plus discount language", "it's my birthday, any offers?", Context{}, TypeHaggle},
		{"discount language alone", "can i get a discount", Context{}, TypeHaggle},
		{"occasion alone", "it's my wedding next week", Context{}, TypeHaggle},
		{"occasion with search phrasing escapes to search", "looking for a wedding dress", Context{}, TypeSearch},
		{"cheap sorts ascending", "show me something cheaper", Context{}, TypeFilter},
		{"premium sorts descending", "only the most expensive pieces", Context{}, TypeFilter},
		{"search verb", "show me shoes", Context{}, TypeSearch},
		{"product noun alone", "sneakers", Context{}, TypeSearch},
		{"style vocabulary", "something casual for the office", Context{}, TypeSearch},
		{"inventory phrasing", "anything in stock right now?", Context{}, TypeInventoryCheck},
		{"recommend phrasing", "what do you recommend?", Context{}, TypeRecommend},
		{"default", "how are you today?", Context{}, TypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message, tt.ctx)
			assert.Equal(t, tt.want, got.Type)
		})
	}
}

func TestClassifySizeResponseBeatsKeywordOverlap(t *testing.T) {
	// Even a size token that doubles as catalog vocabulary must answer the
	// outstanding size question first.
	ctx := Context{PendingSize: true, ShownCount: 1, ShownNames: []string{"Daily Sneaker"}}
	for _, msg := range []string{"42", "L", "small", "size 40", "size: XL"} {
		got := Classify(msg, ctx)
		assert.Equalf(t, TypeSizeResponse, got.Type, "message %q", msg)
		assert.NotEmptyf(t, got.Size, "message %q", msg)
	}
}

func TestClassifyExtractsEntities(t *testing.T) {
	shown := Context{ShownCount: 3, ShownNames: []string{"Leather Boots", "Canvas Tote", "Wool Sweater"}}

	first := Classify("add the first one", shown)
	assert.Equal(t, 1, first.Ordinal)

	last := Classify("i'll take the last one", shown)
	assert.Equal(t, -1, last.Ordinal)

	named := Classify("buy the canvas tote please", shown)
	assert.Equal(t, "Canvas Tote", named.ProductHint)

	sized := Classify("add the boots in size 42", shown)
	assert.Equal(t, "42", sized.Size)

	sorted := Classify("sort by price", Context{})
	assert.Equal(t, TypeFilter, sorted.Type)
	assert.Equal(t, "asc", sorted.SortOrder)
}

func TestExtractSize(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"add it in size m", "M"},
		{"size 42 please", "42"},
		{"buy it in 42", "42"},
		{"add the large tote", ""}, // word sizes only count after "size"
		{"size large", "L"},
		{"no size here", ""},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ExtractSize(tt.message), "message %q", tt.message)
	}
}

func TestAffirmative(t *testing.T) {
	assert.True(t, Affirmative("Yes!"))
	assert.True(t, Affirmative("add it to my cart"))
	assert.False(t, Affirmative("yes i was wondering about returns"))
}
