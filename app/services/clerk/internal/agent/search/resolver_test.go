package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"TrendZone/app/services/clerk/internal/agent/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products  []catalog.Product
	searchErr error
	listErr   error
}

func (f *fakeCatalog) List(_ context.Context, flt catalog.Filter, _ catalog.Sort) ([]catalog.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []catalog.Product
	for _, p := range f.products {
		if flt.Category != "" && p.Category != flt.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) GetById(_ context.Context, id string) (*catalog.Product, error) {
	for _, p := range f.products {
		if p.Id == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) TextSearch(_ context.Context, terms []string) ([]catalog.Product, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []catalog.Product
	for _, p := range f.products {
		if p.MatchesAnyTerm(terms) {
			out = append(out, p)
		}
	}
	return out, nil
}

func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{Id: "p1", Name: "Daily Sneaker", Category: "Shoes", Colors: []string{"white"}, Stock: 5},
		{Id: "p2", Name: "Trail Sneaker", Category: "Shoes", Colors: []string{"black"}, Stock: 3},
		{Id: "p3", Name: "Leather Boots", Category: "Shoes", Colors: []string{"brown"}, Stock: 2},
		{Id: "p4", Name: "Canvas Tote", Category: "Bags", Stock: 8},
	}
}

func newResolver(c catalog.Catalog) *Resolver {
	return NewResolver(c, catalog.NewInventory(c, time.Minute))
}

func TestResolveByKeyword(t *testing.T) {
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "show me sneakers")

	require.False(t, got.NoMatch)
	assert.Len(t, got.Products, 2)
	assert.Equal(t, "show me sneakers", got.Query)
}

func TestResolveCorrectsSpelling(t *testing.T) {
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "sneekers please")

	require.False(t, got.NoMatch)
	assert.Contains(t, got.Query, "sneakers")
	assert.Len(t, got.Products, 2)
}

func TestResolveColorSubsetPreferred(t *testing.T) {
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "black sneakers")

	require.False(t, got.NoMatch)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "p2", got.Products[0].Id)
	assert.Equal(t, "black", got.Color)
}

func TestResolveColorFallsBackToUnfiltered(t *testing.T) {
	// No sneaker mentions purple anywhere; the shopper still gets the
	// color-less match set, with the requested color reported back.
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "purple sneakers")

	require.False(t, got.NoMatch)
	assert.Len(t, got.Products, 2)
	assert.Equal(t, "purple", got.Color)
}

func TestResolveCategoryFallback(t *testing.T) {
	// "heels" is a Shoes keyword but matches no product text, so the whole
	// category is offered instead.
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "heels")

	require.False(t, got.NoMatch)
	assert.Equal(t, "Shoes", got.Category)
	assert.Len(t, got.Products, 3)
}

func TestResolveNoMatch(t *testing.T) {
	r := newResolver(&fakeCatalog{products: fixtureProducts()})

	got := r.Resolve(context.Background(), "spaceship")

	assert.True(t, got.NoMatch)
	assert.Empty(t, got.Products)
}

func TestResolveCapsResults(t *testing.T) {
	var many []catalog.Product
	for i := 0; i < 10; i++ {
		many = append(many, catalog.Product{Id: string(rune('a' + i)), Name: "Daily Sneaker", Category: "Shoes"})
	}
	r := newResolver(&fakeCatalog{products: many})

	got := r.Resolve(context.Background(), "sneakers")

	assert.Len(t, got.Products, defaultLimit)
}

func TestResolveDegradesToSnapshotOnStoreError(t *testing.T) {
	fake := &fakeCatalog{products: fixtureProducts()}
	inv := catalog.NewInventory(fake, time.Minute)
	inv.Snapshot(context.Background()) // warm the snapshot
	fake.searchErr = errors.New("store down")
	r := NewResolver(fake, inv)

	got := r.Resolve(context.Background(), "sneakers")

	require.False(t, got.NoMatch, "a store outage must not fail the turn")
	assert.Len(t, got.Products, 2)
}
