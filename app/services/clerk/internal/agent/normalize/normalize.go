// Package normalize cleans up free-text shopping queries before search:
// misspelling correction against a static table, plus color and product-type
// keyword extraction from fixed vocabularies.
package normalize

import (
	"sort"
	"strings"

	"TrendZone/app/common/consts/biz"
)

// Result is the outcome of normalizing one raw query.
type Result struct {
	CorrectedQuery  string
	Color           string
	ProductKeywords []string
}

// misspellings maps frequent storefront typos to canonical tokens. Lookup is
// exact first; near-miss tokens are matched by edit distance within the same
// 3-char prefix bucket.
var misspellings = map[string]string{
	"sneeker":   "sneaker",
	"sneekers":  "sneakers",
	"snekers":   "sneakers",
	"shooes":    "shoes",
	"shose":     "shoes",
	"botts":     "boots",
	"boots":     "boots",
	"loafers":   "loafers",
	"lofers":    "loafers",
	"blazzer":   "blazer",
	"blazr":     "blazer",
	"jaket":     "jacket",
	"jackets":   "jackets",
	"jacet":     "jacket",
	"swetter":   "sweater",
	"sweter":    "sweater",
	"sweather":  "sweater",
	"tshirt":    "t-shirt",
	"tshirts":   "t-shirts",
	"shirrt":    "shirt",
	"trouser":   "trousers",
	"trousrs":   "trousers",
	"pents":     "pants",
	"jeens":     "jeans",
	"handbagg":  "handbag",
	"bagpack":   "backpack",
	"backpak":   "backpack",
	"scraf":     "scarf",
	"sunglases": "sunglasses",
	"sungalsses": "sunglasses",
	"accesories": "accessories",
	"wite":      "white",
	"blak":      "black",
	"nevy":      "navy",
	"gry":       "grey",
	"beig":      "beige",
}

// colors in match priority order; first substring hit wins.
var colors = []string{
	"white", "black", "navy", "blue", "red", "green", "beige", "brown",
	"grey", "gray", "pink", "purple", "yellow", "orange", "cream", "tan",
	"olive", "burgundy", "khaki",
}

// productTypes in vocabulary order; every substring hit is reported, in this
// order.
var productTypes = []string{
	"sneakers", "sneaker", "shoes", "shoe", "boots", "boot", "loafers", "loafer",
	"heels", "sandals",
	"blazer", "jacket", "coat", "sweater", "hoodie", "cardigan",
	"t-shirt", "tshirt", "shirt", "dress", "skirt",
	"trousers", "trouser", "pants", "jeans", "shorts",
	"backpack", "handbag", "tote", "clutch", "bags", "bag",
	"belt", "scarf", "hat", "cap", "sunglasses", "watch", "wallet",
	"socks", "gloves",
}

// categoryByKeyword maps product-type nouns to catalog categories for the
// category-level search fallback.
var categoryByKeyword = map[string]string{
	"sneaker": biz.CategoryShoes, "sneakers": biz.CategoryShoes,
	"shoe": biz.CategoryShoes, "shoes": biz.CategoryShoes,
	"boot": biz.CategoryShoes, "boots": biz.CategoryShoes,
	"loafer": biz.CategoryShoes, "loafers": biz.CategoryShoes,
	"heels": biz.CategoryShoes, "sandals": biz.CategoryShoes,
	"blazer": biz.CategoryClothes, "jacket": biz.CategoryClothes, "coat": biz.CategoryClothes,
	"sweater": biz.CategoryClothes, "hoodie": biz.CategoryClothes, "cardigan": biz.CategoryClothes,
	"shirt": biz.CategoryClothes, "t-shirt": biz.CategoryClothes, "tshirt": biz.CategoryClothes,
	"dress": biz.CategoryClothes, "skirt": biz.CategoryClothes,
	"pant": biz.CategoryClothes, "pants": biz.CategoryClothes,
	"trouser": biz.CategoryClothes, "trousers": biz.CategoryClothes,
	"jeans": biz.CategoryClothes, "shorts": biz.CategoryClothes,
	"bag": biz.CategoryBags, "bags": biz.CategoryBags, "tote": biz.CategoryBags,
	"backpack": biz.CategoryBags, "handbag": biz.CategoryBags, "clutch": biz.CategoryBags,
	"accessory": biz.CategoryAccessories, "accessories": biz.CategoryAccessories,
	"belt": biz.CategoryAccessories, "scarf": biz.CategoryAccessories,
	"hat": biz.CategoryAccessories, "cap": biz.CategoryAccessories,
	"sunglasses": biz.CategoryAccessories, "watch": biz.CategoryAccessories,
	"wallet": biz.CategoryAccessories, "socks": biz.CategoryAccessories,
	"gloves": biz.CategoryAccessories,
}

// Normalize lower-cases and tokenizes the query, corrects misspelled tokens,
// and extracts color and product-type keywords. An empty query yields an
// empty result with CorrectedQuery equal to the input.
func Normalize(query string) Result {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return Result{CorrectedQuery: trimmed}
	}

	tokens := strings.Fields(trimmed)
	for i, tok := range tokens {
		tokens[i] = correctToken(tok)
	}
	corrected := strings.Join(tokens, " ")

	res := Result{CorrectedQuery: corrected}
	for _, c := range colors {
		if vocabMatch(corrected, tokens, c) {
			res.Color = c
			break
		}
	}
	for _, p := range productTypes {
		if vocabMatch(corrected, tokens, p) {
			res.ProductKeywords = append(res.ProductKeywords, p)
		}
	}
	return res
}

// vocabMatch is a substring match, except for very short vocabulary entries
// ("hat", "bag", "tan") which must stand alone as a word so they don't fire
// inside "what" or "tank".
func vocabMatch(corrected string, tokens []string, entry string) bool {
	if len(entry) > 3 {
		return strings.Contains(corrected, entry)
	}
	for _, tok := range tokens {
		if strings.Trim(tok, ".,!?\"'") == entry {
			return true
		}
	}
	return false
}

// CategoryFor maps product-type keywords through the category table and
// returns the first hit, or "" when none of them maps.
func CategoryFor(keywords []string) string {
	for _, kw := range keywords {
		if c, ok := categoryByKeyword[strings.ToLower(kw)]; ok {
			return c
		}
	}
	return ""
}

// FallbackTerms returns the generic search terms for a query with no
// product-type match: lower-cased words longer than 2 characters.
func FallbackTerms(query string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,!?\"'")
		if len(w) > 2 {
			terms = append(terms, w)
		}
	}
	return terms
}

// misspellingKeys is the sorted table key list, so near-miss ties inside a
// prefix bucket always resolve to the same correction.
var misspellingKeys = func() []string {
	keys := make([]string, 0, len(misspellings))
	for k := range misspellings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

func correctToken(tok string) string {
	if canonical, ok := misspellings[tok]; ok {
		return canonical
	}
	if len(tok) <= 3 {
		return tok
	}

	prefix := tok[:3]
	best := ""
	bestDist := 3
	for _, key := range misspellingKeys {
		if len(key) < 3 || key[:3] != prefix {
			continue
		}
		if d := levenshtein(tok, key); d < bestDist {
			best, bestDist = misspellings[key], d
		}
	}
	if best != "" {
		return best
	}
	return tok
}

// levenshtein computes edit distance with a rolling single-row table; inputs
// here are short query tokens.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur := prev[0] + 1
		prevDiag := prev[0]
		prev[0] = cur
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			next := min3(prev[j]+1, cur+1, prevDiag+cost)
			prevDiag = prev[j]
			prev[j] = next
			cur = next
		}
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
