package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name string) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Category: "Beras",
		Price:    75000,
		Stock:    20,
		MinStock: 5,
		Unit:     model.UnitPcs,
	}
}

func emptyCatalog(t *testing.T) (*Catalog, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	// Dokumen kosong supaya seed default tidak ikut campur.
	require.NoError(t, st.Save(context.Background(), store.KeyProducts, []byte("[]")))
	c, err := Load(context.Background(), st)
	require.NoError(t, err)
	return c, st
}

func TestLoadSeedsDefaultsWhenAbsent(t *testing.T) {
	st := store.NewMemoryStore()
	c, err := Load(context.Background(), st)
	require.NoError(t, err)

	products := c.List()
	assert.Len(t, products, 8)

	// Seed langsung dipersist.
	data, err := st.Load(context.Background(), store.KeyProducts)
	require.NoError(t, err)
	var persisted []model.Product
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, products, persisted)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, testProduct("p1", "Beras 5kg")))
	err := c.Add(ctx, testProduct("p1", "Beras lain"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAddValidation(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()

	cases := map[string]model.Product{
		"empty name":     {ID: "x", Category: "Gula", Price: 1, Unit: model.UnitKg},
		"empty category": {ID: "x", Name: "Gula", Price: 1, Unit: model.UnitKg},
		"negative price": {ID: "x", Name: "Gula", Category: "Gula", Price: -1, Unit: model.UnitKg},
		"negative stock": {ID: "x", Name: "Gula", Category: "Gula", Stock: -1, Unit: model.UnitKg},
		"negative min":   {ID: "x", Name: "Gula", Category: "Gula", MinStock: -1, Unit: model.UnitKg},
		"unknown unit":   {ID: "x", Name: "Gula", Category: "Gula", Unit: "ton"},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Add(ctx, p), ErrInvalidProduct)
		})
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, testProduct("p1", "Beras 5kg")))

	// Delta jauh lebih besar dari on-hand: stok floor di 0, tidak negatif.
	updated, err := c.AdjustStock(ctx, "p1", -9999)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)

	updated, err = c.AdjustStock(ctx, "p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)

	updated, err = c.AdjustStock(ctx, "p1", -3)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Stock)

	_, err = c.AdjustStock(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestApplyDecrementsAllOrNothing(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, testProduct("p1", "Beras 5kg")))
	require.NoError(t, c.Add(ctx, testProduct("p2", "Gula 1kg")))

	// Satu id tidak dikenal: tidak ada satu pun stok yang berubah.
	err := c.ApplyDecrements(ctx, Decrements{"p1": 5, "ghost": 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
	p1, _ := c.Get("p1")
	assert.Equal(t, 20, p1.Stock)

	require.NoError(t, c.ApplyDecrements(ctx, Decrements{"p1": 5, "p2": 25}))
	p1, _ = c.Get("p1")
	p2, _ := c.Get("p2")
	assert.Equal(t, 15, p1.Stock)
	assert.Equal(t, 0, p2.Stock, "oversold line clamps at zero")
}

func TestUpdateReplacesRecord(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, testProduct("p1", "Beras 5kg")))

	edited := testProduct("p1", "Beras Premium 5kg")
	edited.Price = 80000
	require.NoError(t, c.Update(ctx, edited))

	got, err := c.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "Beras Premium 5kg", got.Name)
	assert.Equal(t, int64(80000), got.Price)

	missing := testProduct("ghost", "Tidak Ada")
	assert.ErrorIs(t, c.Update(ctx, missing), ErrProductNotFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	c, _ := emptyCatalog(t)
	require.NoError(t, c.Add(context.Background(), testProduct("p1", "Beras 5kg")))

	snapshot := c.List()
	snapshot[0].Stock = -42
	snapshot[0].Name = "diubah caller"

	got, err := c.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "Beras 5kg", got.Name)
	assert.Equal(t, 20, got.Stock)
}

func TestFindSearchFilterSort(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()
	for _, p := range []model.Product{
		{ID: "a", Name: "Gula Pasir", Category: "Gula", Price: 17500, Unit: model.UnitKg},
		{ID: "b", Name: "Beras Pandan", Category: "Beras", Price: 75000, Unit: model.UnitPcs},
		{ID: "c", Name: "Gula Merah", Category: "Gula", Price: 15000, Unit: model.UnitKg},
	} {
		require.NoError(t, c.Add(ctx, p))
	}

	byName := c.Find(Query{Search: "gula"})
	assert.Len(t, byName, 2)

	byCategory := c.Find(Query{Category: "Beras"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Beras Pandan", byCategory[0].Name)

	sorted := c.Find(Query{Sort: SortAsc})
	require.Len(t, sorted, 3)
	assert.Equal(t, "Beras Pandan", sorted[0].Name)
	assert.Equal(t, "Gula Pasir", sorted[2].Name)

	reversed := c.Find(Query{Sort: SortDesc})
	assert.Equal(t, "Gula Pasir", reversed[0].Name)
}

func TestLowStockBoundaries(t *testing.T) {
	c, _ := emptyCatalog(t)
	ctx := context.Background()

	mk := func(id string, stock int) model.Product {
		p := testProduct(id, "Produk "+id)
		p.Stock = stock
		p.MinStock = 10
		return p
	}
	require.NoError(t, c.Add(ctx, mk("below", 9)))
	require.NoError(t, c.Add(ctx, mk("at", 10)))
	require.NoError(t, c.Add(ctx, mk("above", 11)))

	low := c.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "Produk below", low[0].Name)
	assert.Equal(t, "Produk at", low[1].Name)

	above, _ := c.Get("above")
	assert.False(t, above.LowStock())
}

func TestMutationsArePersisted(t *testing.T) {
	c, st := emptyCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, testProduct("p1", "Beras 5kg")))
	_, err := c.AdjustStock(ctx, "p1", -5)
	require.NoError(t, err)

	// Reload dari store yang sama: state harus identik.
	reloaded, err := Load(ctx, st)
	require.NoError(t, err)
	got, err := reloaded.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Stock)
}
