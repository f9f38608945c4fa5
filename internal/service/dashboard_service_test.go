package service

import (
	"context"
	"testing"
	"time"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(ctx, store.KeyProducts, []byte("[]")))

	cat, err := catalog.Load(ctx, st)
	require.NoError(t, err)
	led, err := ledger.Load(ctx, st)
	require.NoError(t, err)

	require.NoError(t, cat.Add(ctx, model.Product{ID: "a", Name: "Beras", Category: "Beras", Price: 10000, Stock: 20, MinStock: 5, Unit: model.UnitPcs}))
	require.NoError(t, cat.Add(ctx, model.Product{ID: "b", Name: "Kopi", Category: "Kopi", Price: 5000, Stock: 2, MinStock: 10, Unit: model.UnitPcs}))

	fixed := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	led.Append(ctx, model.Transaction{ID: "TRX-1", Date: fixed, Total: 15000, PaymentMethod: model.PayCash})
	led.Append(ctx, model.Transaction{ID: "TRX-2", Date: fixed.Add(-26 * time.Hour), Total: 5000, PaymentMethod: model.PayQRIS})

	svc := &dashboardService{catalog: cat, ledger: led, now: func() time.Time { return fixed }}

	stats := svc.GetDashboardStats()
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)
	require.Len(t, stats.LowStockItems, 1)
	assert.Equal(t, "Kopi", stats.LowStockItems[0].Name)
	assert.Equal(t, int64(10000*20+5000*2), stats.TotalValuation)
	assert.Equal(t, int64(15000), stats.TodayRevenue, "yesterday's sale is excluded")
	assert.Equal(t, 1, stats.TodayTransactions)
}

func TestSalesMovementBucketsPerDay(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(ctx, store.KeyProducts, []byte("[]")))

	cat, err := catalog.Load(ctx, st)
	require.NoError(t, err)
	led, err := ledger.Load(ctx, st)
	require.NoError(t, err)

	fixed := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	led.Append(ctx, model.Transaction{ID: "TRX-1", Date: fixed, Total: 10000})
	led.Append(ctx, model.Transaction{ID: "TRX-2", Date: fixed.Add(-24 * time.Hour), Total: 7000})
	led.Append(ctx, model.Transaction{ID: "TRX-3", Date: fixed.Add(-24 * time.Hour), Total: 3000})
	led.Append(ctx, model.Transaction{ID: "TRX-OLD", Date: fixed.Add(-10 * 24 * time.Hour), Total: 99999})

	svc := &dashboardService{catalog: cat, ledger: led, now: func() time.Time { return fixed }}

	data := svc.GetSalesMovement(7)
	require.Len(t, data, 7)
	assert.Equal(t, "2025-03-04", data[0].Date, "oldest day first")
	assert.Equal(t, "2025-03-10", data[6].Date)

	assert.Equal(t, int64(10000), data[6].Revenue)
	assert.Equal(t, 1, data[6].Transactions)
	assert.Equal(t, int64(10000), data[5].Revenue)
	assert.Equal(t, 2, data[5].Transactions)
	assert.Equal(t, int64(0), data[0].Revenue, "empty days appear with zero")
}
