package clerk

import (
	"fmt"
	"strings"

	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/search"
)

const (
	msgApology = "Sorry, something went wrong on my end. Could you try that again?"

	msgWhichItem = "I'm not sure which item you mean. Could you search for it first, or tell me its name?"

	msgCartTrouble = "I hit a snag adding that to your cart. Please try again in a moment."

	msgGreeting = "Hi there! 👋 I'm your TrendZone shopping clerk. I can find products, check sizes and stock, sort by price, and even talk discounts. What are you shopping for today?"

	msgThanks = "You're welcome! Let me know if there's anything else I can find for you. 😊"

	msgBye = "Thanks for stopping by TrendZone! Come back anytime. 👋"

	msgCartLocation = "Your cart is at the top right of the page, the little bag icon. Everything I add for you lands there."

	msgCapabilities = "I can help you with a few things: search the catalog (try \"show me black sneakers\"), sort by price, check if something is in stock, recommend pieces, and add items to your cart. What would you like?"
)

func msgCartWithItems(count int) string {
	if count == 1 {
		return "Your cart is at the top right of the page, the little bag icon. There's 1 item in it right now."
	}
	return fmt.Sprintf("Your cart is at the top right of the page, the little bag icon. There are %d items in it right now.", count)
}

func msgSearchResults(res search.Result) string {
	noun := "items"
	if len(res.Products) == 1 {
		noun = "item"
	}
	if res.Color != "" {
		return fmt.Sprintf("Here's what I found for %q in %s, %d %s:", res.Query, res.Color, len(res.Products), noun)
	}
	return fmt.Sprintf("Here's what I found for %q, %d %s:", res.Query, len(res.Products), noun)
}

func msgNoMatch(query string, havePicks bool) string {
	if havePicks {
		return fmt.Sprintf("I couldn't find anything matching %q, sorry! Here are a few pieces you might like instead:", query)
	}
	return fmt.Sprintf("I couldn't find anything matching %q, sorry! Try a category like shoes, bags or jackets.", query)
}

func msgSorted(order string, count int) string {
	if order == "desc" {
		return fmt.Sprintf("Here are our %d most premium picks, priciest first:", count)
	}
	return fmt.Sprintf("Here are %d budget-friendly picks, cheapest first:", count)
}

func msgRecommend(count int) string {
	return fmt.Sprintf("Based on what's been catching eyes lately, here are %d pieces I think you'll like:", count)
}

func msgInventoryNotFound(query string) string {
	return fmt.Sprintf("I couldn't find %q in our catalog, so I can't check its stock. Want me to search for something similar?", query)
}

func msgStockStatus(p catalog.Product, size string) string {
	var b strings.Builder
	if p.Stock > 0 {
		fmt.Fprintf(&b, "Good news, %s is in stock (%d left).", p.Name, p.Stock)
	} else {
		fmt.Fprintf(&b, "Unfortunately %s is out of stock right now.", p.Name)
	}
	if size != "" {
		if p.OneSize() {
			b.WriteString(" It comes in one size.")
		} else if p.HasSize(size) {
			fmt.Fprintf(&b, " Size %s is in its size range.", size)
		} else {
			fmt.Fprintf(&b, " It doesn't come in size %s though; available sizes are %s.", size, strings.Join(p.Sizes, ", "))
		}
	}
	return b.String()
}

func msgAskSize(p catalog.Product) string {
	return fmt.Sprintf("Great choice! %s comes in sizes %s. Which size would you like?", p.Name, strings.Join(p.Sizes, ", "))
}

func msgInvalidSize(p catalog.Product, size string) string {
	return fmt.Sprintf("Hmm, %s doesn't come in size %s. Available sizes are %s. Which one works for you?", p.Name, size, strings.Join(p.Sizes, ", "))
}

func msgOutOfStock(p catalog.Product) string {
	return fmt.Sprintf("Ah, %s is out of stock right now. Want me to recommend something similar?", p.Name)
}

func msgAdded(p catalog.Product, size string) string {
	if size == "" {
		return fmt.Sprintf("Done! %s is in your cart. 🛒", p.Name)
	}
	return fmt.Sprintf("Done! %s in size %s is in your cart. 🛒", p.Name, size)
}

func msgOrdinalOutOfRange(shown int) string {
	noun := "items"
	if shown == 1 {
		noun = "item"
	}
	return fmt.Sprintf("I only showed you %d %s, could you point me at one of those?", shown, noun)
}
