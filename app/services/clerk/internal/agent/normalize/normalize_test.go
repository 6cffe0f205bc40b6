package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCorrectsMisspellings(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact table hit", "sneekers", "sneakers"},
		{"prefix bucket levenshtein", "jakett", "jacket"},
		{"jacket typo", "jaket for winter", "jacket for winter"},
		{"already correct", "black dress", "black dress"},
		{"short tokens untouched", "red hat", "red hat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.query)
			assert.Equal(t, tt.want, got.CorrectedQuery)
		})
	}
}

func TestCorrectTokenNearestKeyWinsDeterministically(t *testing.T) {
	// "sneker" sits at distance 1 from both "sneeker" and "snekers", whose
	// canonicals differ; the sorted bucket keeps the winner stable.
	for i := 0; i < 50; i++ {
		assert.Equal(t, "sneaker", correctToken("sneker"))
	}

	// "blak" (distance 1, canonical "black") must beat "blazr" (distance 2,
	// canonical "blazer") no matter the table order.
	for i := 0; i < 50; i++ {
		assert.Equal(t, "black", correctToken("black"))
	}
}

func TestNormalizeExtractsColorAndKeywords(t *testing.T) {
	got := Normalize("show me some black sneekers with a shirt")

	assert.Equal(t, "black", got.Color)
	require.NotEmpty(t, got.ProductKeywords)
	assert.Contains(t, got.ProductKeywords, "sneakers")
	assert.Contains(t, got.ProductKeywords, "shirt")
	assert.Equal(t, "sneakers", got.ProductKeywords[0], "vocabulary order is preserved")
}

func TestNormalizeEmptyQuery(t *testing.T) {
	got := Normalize("")

	assert.Empty(t, got.CorrectedQuery)
	assert.Empty(t, got.Color)
	assert.Empty(t, got.ProductKeywords)
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "Shoes", CategoryFor([]string{"sneakers"}))
	assert.Equal(t, "Clothes", CategoryFor([]string{"unknownword", "dress"}))
	assert.Empty(t, CategoryFor([]string{"unknownword"}))
	assert.Empty(t, CategoryFor(nil))
}

func TestFallbackTerms(t *testing.T) {
	got := FallbackTerms("A cozy knit for fall!")

	assert.Contains(t, got, "cozy")
	assert.Contains(t, got, "knit")
	assert.Contains(t, got, "fall", "trailing punctuation is trimmed")
	assert.NotContains(t, got, "a", "words of 2 characters or fewer are dropped")
}
