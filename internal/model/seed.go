package model

import "github.com/google/uuid"

// DefaultProducts is the starter catalog used when the persisted "products"
// document is absent (first run on a fresh till).
func DefaultProducts() []Product {
	return []Product{
		{ID: uuid.NewString(), Name: "Beras Pandan Wangi 5kg", Price: 75000, Stock: 20, Unit: UnitPcs, Category: "Beras", MinStock: 5},
		{ID: uuid.NewString(), Name: "Minyak Goreng Bimoli 2L", Price: 38000, Stock: 15, Unit: UnitPcs, Category: "Minyak", MinStock: 4},
		{ID: uuid.NewString(), Name: "Gula Pasir Gulaku 1kg", Price: 17500, Stock: 50, Unit: UnitKg, Category: "Gula", MinStock: 10},
		{ID: uuid.NewString(), Name: "Telur Ayam (1kg)", Price: 28000, Stock: 12, Unit: UnitKg, Category: "Telur", MinStock: 3},
		{ID: uuid.NewString(), Name: "Indomie Goreng", Price: 3100, Stock: 120, Unit: UnitPcs, Category: "Mie Instan", MinStock: 40},
		{ID: uuid.NewString(), Name: "Kopi Kapal Api 165g", Price: 14500, Stock: 8, Unit: UnitPcs, Category: "Kopi", MinStock: 10},
		{ID: uuid.NewString(), Name: "Susu Kental Manis Frisian Flag", Price: 12500, Stock: 24, Unit: UnitPcs, Category: "Susu", MinStock: 6},
		{ID: uuid.NewString(), Name: "Garam Dapur 250g", Price: 2500, Stock: 40, Unit: UnitPcs, Category: "Bumbu", MinStock: 10},
	}
}
