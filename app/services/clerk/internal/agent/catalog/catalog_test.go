package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["S","M","L"]`, []string{"S", "M", "L"}},
		{"comma separated", "S, M ,L", []string{"S", "M", "L"}},
		{"empty", "", nil},
		{"empty json array", "[]", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeList(tt.raw))
		})
	}
}

func TestProductHasSize(t *testing.T) {
	p := Product{Sizes: []string{"S", "M", "L"}}
	assert.True(t, p.HasSize("m"))
	assert.False(t, p.HasSize("XXL"))
	assert.False(t, p.OneSize())

	oneSize := Product{}
	assert.True(t, oneSize.OneSize())
}

func TestProductMentionsColor(t *testing.T) {
	p := Product{Name: "Trail Runner", Description: "all-black everyday shoe", Colors: []string{"White"}}
	assert.True(t, p.MentionsColor("white"), "colors list is checked case-insensitively")
	assert.True(t, p.MentionsColor("black"), "description text counts")
	assert.False(t, p.MentionsColor("purple"))
	assert.False(t, p.MentionsColor(""))
}

type countingCatalog struct {
	calls    atomic.Int64
	products []Product
	err      error
}

func (c *countingCatalog) List(context.Context, Filter, Sort) ([]Product, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

func (c *countingCatalog) GetById(context.Context, string) (*Product, error) { return nil, nil }

func (c *countingCatalog) TextSearch(context.Context, []string) ([]Product, error) {
	return nil, nil
}

func TestInventorySnapshotCachesWithinTTL(t *testing.T) {
	src := &countingCatalog{products: []Product{{Id: "p1"}}}
	inv := NewInventory(src, time.Minute)

	first := inv.Snapshot(context.Background())
	second := inv.Snapshot(context.Background())

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, src.calls.Load(), "a fresh snapshot is served without refetching")
}

func TestInventoryInvalidateForcesRefresh(t *testing.T) {
	src := &countingCatalog{products: []Product{{Id: "p1"}}}
	inv := NewInventory(src, time.Minute)

	inv.Snapshot(context.Background())
	inv.Invalidate()
	inv.Snapshot(context.Background())

	assert.EqualValues(t, 2, src.calls.Load())
}

func TestInventoryServesStaleOnError(t *testing.T) {
	src := &countingCatalog{products: []Product{{Id: "p1"}}}
	inv := NewInventory(src, time.Minute)

	warm := inv.Snapshot(context.Background())
	require.Len(t, warm, 1)

	src.err = errors.New("store down")
	inv.Invalidate()
	got := inv.Snapshot(context.Background())

	assert.Equal(t, warm, got, "refresh failure serves the previous snapshot")
}
