package service

import (
	"time"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/model"
)

// DashboardStats untuk overview stats layar dashboard.
type DashboardStats struct {
	TotalProducts     int             `json:"total_products"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockItems     []model.Product `json:"low_stock_items"`
	TotalValuation    int64           `json:"total_valuation"`
	TodayRevenue      int64           `json:"today_revenue"`
	TodayTransactions int             `json:"today_transactions"`
}

// SalesMovementData untuk chart penjualan harian.
type SalesMovementData struct {
	Date         string `json:"date"`
	Revenue      int64  `json:"revenue"`
	Transactions int    `json:"transactions"`
}

type DashboardService interface {
	GetDashboardStats() *DashboardStats
	GetSalesMovement(days int) []SalesMovementData
}

type dashboardService struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	now     func() time.Time
}

func NewDashboardService(cat *catalog.Catalog, led *ledger.Ledger) DashboardService {
	return &dashboardService{catalog: cat, ledger: led, now: time.Now}
}

func (s *dashboardService) GetDashboardStats() *DashboardStats {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	revenue, count := s.ledger.RevenueSince(startOfDay)

	low := s.catalog.LowStock()
	return &DashboardStats{
		TotalProducts:     len(s.catalog.List()),
		LowStockCount:     len(low),
		LowStockItems:     low,
		TotalValuation:    s.catalog.TotalStockValue(),
		TodayRevenue:      revenue,
		TodayTransactions: count,
	}
}

// GetSalesMovement aggregates the ledger into one bucket per calendar day
// over the trailing window, oldest first, termasuk hari tanpa penjualan.
func (s *dashboardService) GetSalesMovement(days int) []SalesMovementData {
	if days <= 0 {
		days = 7
	}
	now := s.now()

	buckets := make(map[string]*SalesMovementData, days)
	out := make([]SalesMovementData, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		out = append(out, SalesMovementData{Date: date})
		buckets[date] = &out[len(out)-1]
	}

	for _, tx := range s.ledger.All() {
		bucket, ok := buckets[tx.Date.Format("2006-01-02")]
		if !ok {
			continue
		}
		bucket.Revenue += tx.Total
		bucket.Transactions++
	}
	return out
}
