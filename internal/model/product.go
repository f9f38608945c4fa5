package model

// UnitType adalah satuan display produk. Tidak ada konversi numerik antar satuan.
type UnitType string

const (
	UnitKg    UnitType = "kg"
	UnitGram  UnitType = "gr"
	UnitPcs   UnitType = "pcs"
	UnitDus   UnitType = "dus"
	UnitLiter UnitType = "liter"
)

// Units lists every valid unit label, in display order.
var Units = []UnitType{UnitKg, UnitGram, UnitPcs, UnitDus, UnitLiter}

func (u UnitType) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Product is a sellable catalog entry. Price is stored in the smallest
// currency unit (whole Rupiah); Stock must never go below zero.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    int64    `json:"price" validate:"gte=0"`
	Stock    int      `json:"stock" validate:"gte=0"`
	MinStock int      `json:"minStock" validate:"gte=0"`
	Unit     UnitType `json:"unit" validate:"unit"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// LowStock melaporkan kondisi restock: stok di atau di bawah ambang minimum.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// StockValue is the valuation of the on-hand quantity at current price.
func (p Product) StockValue() int64 {
	return p.Price * int64(p.Stock)
}
