package intent

import (
	"strconv"
	"strings"

	"TrendZone/app/services/clerk/internal/agent/normalize"
)

type rule struct {
	name  string
	match func(msg string, ctx Context) (Intent, bool)
}

// rules is the classification priority order. Do not reorder without
// adjusting the tests that pin it down.
var rules = []rule{
	{"size_response", matchSizeResponse},
	{"add_affirmative", matchAddAffirmative},
	{"add_referential", matchAddReferential},
	{"haggle", matchHaggle},
	{"filter", matchFilter},
	{"search", matchSearch},
	{"inventory_check", matchInventoryCheck},
	{"recommendations", matchRecommend},
}

// Classify runs the ordered rule list over the lower-cased utterance and
// returns the first match, defaulting to a general-chat intent.
func Classify(message string, ctx Context) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range rules {
		if in, ok := r.match(msg, ctx); ok {
			in.Rule = r.name
			if in.Query == "" {
				in.Query = message
			}
			return in
		}
	}
	return Intent{Type: TypeGeneral, Rule: "general", Query: message}
}

var affirmatives = map[string]struct{}{
	"add it": {}, "buy it": {}, "get it": {}, "take it": {},
	"i'll take it": {}, "ill take it": {},
	"yes": {}, "yeah": {}, "yep": {}, "yes please": {},
	"ok": {}, "okay": {}, "sure": {}, "sounds good": {},
	"add to cart": {}, "add it to my cart": {}, "add it to cart": {},
}

var addVerbs = []string{"add", "buy", "get", "take", "cart", "order"}

var ordinalWords = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"sixth": 6, "6th": 6,
	"last": -1,
}

var occasionWords = []string{
	"birthday", "wedding", "anniversary", "valentine", "valentines",
	"graduation", "christmas", "new year",
}

var discountWords = []string{
	"discount", "deal", "coupon", "promo", "cheaper price", "can you give",
	"any offer", "offers",
}

var searchPhrases = []string{
	"show me", "looking for", "look for", "find", "search",
	"do you have", "i want", "i need", "i'm after", "browse",
}

var styleWords = []string{
	"winter", "summer", "spring", "autumn", "casual", "formal", "party",
	"office", "work", "outfit", "style", "trendy", "elegant", "cozy",
}

// Affirmative reports whether the message is a bare confirmation like
// "yes" or "add it". The general handler mirrors the affirmative add rule
// with this so the two stay consistent.
func Affirmative(msg string) bool {
	stripped := strings.Trim(strings.ToLower(strings.TrimSpace(msg)), " .!?,")
	_, ok := affirmatives[stripped]
	return ok
}

func matchSizeResponse(msg string, ctx Context) (Intent, bool) {
	if !ctx.PendingSize {
		return Intent{}, false
	}
	size := canonicalBareSize(msg)
	if size == "" {
		return Intent{}, false
	}
	return Intent{Type: TypeSizeResponse, Size: size}, true
}

func matchAddAffirmative(msg string, ctx Context) (Intent, bool) {
	if ctx.ShownCount == 0 && !ctx.PendingSize {
		return Intent{}, false
	}
	stripped := strings.Trim(msg, " .!?,")
	if _, ok := affirmatives[stripped]; !ok {
		return Intent{}, false
	}
	return Intent{Type: TypeAddToCart, Ordinal: 1, Size: ExtractSize(msg)}, true
}

func matchAddReferential(msg string, ctx Context) (Intent, bool) {
	if !containsAny(msg, addVerbs...) {
		return Intent{}, false
	}

	for word, idx := range ordinalWords {
		if containsWord(msg, word) {
			if ctx.ShownCount == 0 {
				return Intent{}, false
			}
			return Intent{Type: TypeAddToCart, Ordinal: idx, Size: ExtractSize(msg)}, true
		}
	}

	if name := matchShownName(msg, ctx.ShownNames); name != "" {
		return Intent{Type: TypeAddToCart, ProductHint: name, Size: ExtractSize(msg)}, true
	}

	// An add verb plus an explicit product noun ("add the blazer") still
	// reads as an add even when nothing was shown yet; the handler falls
	// back to a catalog scan.
	if kws := normalize.Normalize(msg).ProductKeywords; len(kws) > 0 {
		return Intent{Type: TypeAddToCart, ProductHint: kws[0], Size: ExtractSize(msg)}, true
	}

	return Intent{}, false
}

func matchHaggle(msg string, _ Context) (Intent, bool) {
	hasOccasion := containsAny(msg, occasionWords...)
	hasDiscountLang := containsAny(msg, discountWords...)

	switch {
	case hasOccasion && hasDiscountLang:
		return Intent{Type: TypeHaggle}, true
	case hasDiscountLang:
		return Intent{Type: TypeHaggle}, true
	case hasOccasion && !containsAny(msg, searchPhrases...):
		// An occasion with no search phrasing is treated as a discount
		// request. "looking for a wedding gift" escapes to search.
		return Intent{Type: TypeHaggle}, true
	}
	return Intent{}, false
}

func matchFilter(msg string, _ Context) (Intent, bool) {
	if containsAny(msg, "cheaper", "cheapest", "cheap", "affordable", "budget", "low price", "less expensive") {
		return Intent{Type: TypeFilter, SortOrder: "asc"}, true
	}
	if containsAny(msg, "expensive", "premium", "luxury", "high end", "pricier") {
		return Intent{Type: TypeFilter, SortOrder: "desc"}, true
	}
	if strings.Contains(msg, "sort") && strings.Contains(msg, "price") {
		return Intent{Type: TypeFilter, SortOrder: "asc"}, true
	}
	return Intent{}, false
}

func matchSearch(msg string, _ Context) (Intent, bool) {
	if containsAny(msg, searchPhrases...) {
		return Intent{Type: TypeSearch}, true
	}
	if len(normalize.Normalize(msg).ProductKeywords) > 0 {
		return Intent{Type: TypeSearch}, true
	}
	if containsAny(msg, styleWords...) {
		return Intent{Type: TypeSearch}, true
	}
	return Intent{}, false
}

func matchInventoryCheck(msg string, _ Context) (Intent, bool) {
	if containsAny(msg, "available", "availability", "in stock", "out of stock", "stock") {
		return Intent{Type: TypeInventoryCheck}, true
	}
	return Intent{}, false
}

func matchRecommend(msg string, _ Context) (Intent, bool) {
	if containsAny(msg, "recommend", "suggest", "surprise me", "what should i") {
		return Intent{Type: TypeRecommend}, true
	}
	return Intent{}, false
}

// canonicalBareSize recognizes messages that are exactly a size token,
// optionally prefixed with "size:" or "size". Word sizes map to letter
// tokens; shoe sizes 36-49 pass through.
func canonicalBareSize(msg string) string {
	s := strings.Trim(msg, " .!?,")
	s = strings.TrimPrefix(s, "size:")
	s = strings.TrimPrefix(s, "size ")
	s = strings.TrimSpace(s)
	return canonicalSizeToken(s)
}

func canonicalSizeToken(s string) string {
	switch strings.ToLower(s) {
	case "xs", "s", "m", "l", "xl", "xxl":
		return strings.ToUpper(s)
	case "small":
		return "S"
	case "medium":
		return "M"
	case "large":
		return "L"
	case "extra small":
		return "XS"
	case "extra large":
		return "XL"
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 36 && n <= 49 {
		return s
	}
	return ""
}

// ExtractSize pulls an explicit size token out of a longer message, e.g.
// "add the blazer in size m" or "buy it in 42".
func ExtractSize(msg string) string {
	words := strings.Fields(strings.Trim(strings.ToLower(msg), " .!?,"))
	for i, w := range words {
		w = strings.Trim(w, ".,!?")
		if w == "size" && i+1 < len(words) {
			if tok := canonicalSizeToken(strings.Trim(words[i+1], ".,!?")); tok != "" {
				return tok
			}
		}
		// bare shoe sizes and letter sizes are unambiguous anywhere; word
		// sizes ("large tote") are only honored after an explicit "size"
		if tok := canonicalSizeToken(w); tok != "" && w != "s" && w != "small" && w != "medium" && w != "large" {
			return tok
		}
	}
	return ""
}

func containsAny(msg string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func containsWord(msg, word string) bool {
	for _, w := range strings.Fields(msg) {
		if strings.Trim(w, ".,!?\"'") == word {
			return true
		}
	}
	return false
}

// matchShownName finds the previously shown product whose name overlaps the
// message, preferring full-name substring matches, then any significant word
// of the name.
func matchShownName(msg string, names []string) string {
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(msg, strings.ToLower(name)) {
			return name
		}
	}
	for _, name := range names {
		for _, w := range strings.Fields(strings.ToLower(name)) {
			if len(w) > 3 && containsWord(msg, w) {
				return name
			}
		}
	}
	return ""
}
