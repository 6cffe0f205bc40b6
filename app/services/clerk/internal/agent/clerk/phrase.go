package clerk

import (
	"context"
	"fmt"
	"strings"

	"TrendZone/app/services/clerk/internal/agent/catalog"

	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const phrasePrompt = `You are the shopping clerk of TrendZone, a fashion store.
Rewrite the given reply in your own warm, concise voice. Keep every fact
intact, mention only products from the inventory below, and never invent
discounts. Reply with the rewritten text only.

Current inventory:
%s`

// phraseOr asks the chat model to rephrase a canned reply, falling back to
// the canned text whenever the model is absent or misbehaves.
func (c *Clerk) phraseOr(ctx context.Context, canned string) string {
	if c.deps.ChatModel == nil {
		return canned
	}
	inventory := formatInventory(c.deps.Inventory.Snapshot(ctx))
	resp, err := c.deps.ChatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(fmt.Sprintf(phrasePrompt, inventory)),
		schema.UserMessage(canned),
	})
	if err != nil {
		logx.WithContext(ctx).Errorw("phrasing model call failed",
			logx.Field("err", err))
		return canned
	}
	phrased := strings.TrimSpace(resp.Content)
	if phrased == "" {
		return canned
	}
	return phrased
}

// formatInventory renders the snapshot as one product per line for model
// prompts.
func formatInventory(products []catalog.Product) string {
	if len(products) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s ($%.2f, %s", p.Name, p.Price, p.Category)
		if len(p.Sizes) > 0 {
			fmt.Fprintf(&b, ", sizes %s", strings.Join(p.Sizes, "/"))
		}
		if p.Stock <= 0 {
			b.WriteString(", out of stock")
		}
		b.WriteString(")\n")
	}
	return b.String()
}
