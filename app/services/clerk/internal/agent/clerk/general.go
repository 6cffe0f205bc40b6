package clerk

import (
	"context"
	"strings"

	"TrendZone/app/services/clerk/internal/agent/intent"
	"TrendZone/app/services/clerk/internal/agent/state"
)

func (c *Clerk) handleGeneral(ctx context.Context, conv *state.Conversation, t turnInput) (Response, effects) {
	msg := strings.ToLower(strings.TrimSpace(t.message))

	// Mirror of the affirmative add rule: a "yes" right after products
	// were shown means "add it", not small talk.
	if intent.Affirmative(msg) && len(conv.LastShown) > 0 {
		return c.handleAddToCart(ctx, conv, t)
	}

	switch {
	case hasWordAny(msg, "hi", "hello", "hey", "yo", "howdy") ||
		strings.HasPrefix(msg, "good morning") || strings.HasPrefix(msg, "good afternoon") ||
		strings.HasPrefix(msg, "good evening"):
		return Response{Message: msgGreeting}, effects{}

	case strings.Contains(msg, "thank") || strings.Contains(msg, "thx"):
		return Response{Message: msgThanks}, effects{}

	case hasWordAny(msg, "bye", "goodbye") || strings.Contains(msg, "see you"):
		return Response{Message: msgBye}, effects{}

	case strings.Contains(msg, "cart") &&
		(strings.Contains(msg, "where") || strings.Contains(msg, "find") || strings.Contains(msg, "my")):
		count, err := c.deps.Cart.Count(ctx, t.sessionId)
		if err != nil || count == 0 {
			return Response{Message: msgCartLocation}, effects{}
		}
		return Response{Message: msgCartWithItems(count)}, effects{}
	}

	return Response{Message: c.capabilities(ctx)}, effects{}
}

// capabilities is the menu reply, rephrased by the chat model when one is
// configured.
func (c *Clerk) capabilities(ctx context.Context) string {
	return c.phraseOr(ctx, msgCapabilities)
}

func hasWordAny(msg string, words ...string) bool {
	for _, field := range strings.Fields(msg) {
		field = strings.Trim(field, ".,!?")
		for _, w := range words {
			if field == w {
				return true
			}
		}
	}
	return false
}
