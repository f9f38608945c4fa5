package service

import (
	"context"
	"errors"
	"fmt"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/ws"
	"go-pos-kasir/pkg/validator"

	"github.com/google/uuid"
)

var ErrRestockAmount = errors.New("inventory: restock amount must not be zero")

type InventoryService interface {
	CreateProduct(ctx context.Context, req *model.Product) error
	UpdateProduct(ctx context.Context, id string, req *model.Product) (*model.Product, error)
	Restock(ctx context.Context, id string, amount int) (*model.Product, error)
	GetProducts(q catalog.Query) []model.Product
	GetProduct(id string) (model.Product, error)
	Categories() []string
	LowStock() []model.Product
}

type inventoryService struct {
	catalog *catalog.Catalog
	wsHub   *ws.Hub
}

func NewInventoryService(cat *catalog.Catalog, hub *ws.Hub) InventoryService {
	return &inventoryService{catalog: cat, wsHub: hub}
}

func (s *inventoryService) CreateProduct(ctx context.Context, req *model.Product) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'",
			catalog.ErrInvalidProduct, firstErr.FailedField, firstErr.Tag)
	}

	// 2. Generate ID (uniqueness tetap ditegakkan oleh katalog saat insert)
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	// 3. Simpan ke katalog
	if err := s.catalog.Add(ctx, *req); err != nil {
		return err
	}

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"action":  "product_created",
		"product": *req,
	})
	return nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id string, req *model.Product) (*model.Product, error) {
	req.ID = id
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'",
			catalog.ErrInvalidProduct, firstErr.FailedField, firstErr.Tag)
	}

	if err := s.catalog.Update(ctx, *req); err != nil {
		return nil, err
	}

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"action":  "product_updated",
		"product": *req,
	})
	return req, nil
}

// Restock applies a signed stock adjustment from the inventory screen.
// Positif menambah stok; negatif koreksi turun (tetap clamp 0).
func (s *inventoryService) Restock(ctx context.Context, id string, amount int) (*model.Product, error) {
	if amount == 0 {
		return nil, ErrRestockAmount
	}

	updated, err := s.catalog.AdjustStock(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"action":   "stock_adjusted",
		"product":  updated,
		"delta":    amount,
		"lowStock": updated.LowStock(),
	})
	return &updated, nil
}

func (s *inventoryService) GetProducts(q catalog.Query) []model.Product {
	return s.catalog.Find(q)
}

func (s *inventoryService) GetProduct(id string) (model.Product, error) {
	return s.catalog.Get(id)
}

func (s *inventoryService) Categories() []string {
	return s.catalog.Categories()
}

func (s *inventoryService) LowStock() []model.Product {
	return s.catalog.LowStock()
}
