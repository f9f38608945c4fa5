package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/store"
)

var (
	ErrDuplicateID     = errors.New("catalog: duplicate product id")
	ErrProductNotFound = errors.New("catalog: product not found")
	ErrInvalidProduct  = errors.New("catalog: invalid product")
)

// SortOrder untuk listing produk berdasarkan nama.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Query adalah kombinasi search + filter + sort dari layar inventory.
type Query struct {
	Search   string
	Category string
	Sort     SortOrder
}

// Catalog owns every Product record (single writer). All reads hand out
// copies; callers can never reach the live records. Every mutation is
// followed by a flush of the whole "products" document to the store.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
	index    map[string]int // id -> posisi di slice
	store    store.Store
}

// Load membaca dokumen "products" dari store; kalau belum ada, seed dengan
// katalog default lalu langsung flush.
func Load(ctx context.Context, st store.Store) (*Catalog, error) {
	c := &Catalog{store: st, index: make(map[string]int)}

	data, err := st.Load(ctx, store.KeyProducts)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.products = model.DefaultProducts()
		log.Printf("catalog: no persisted products, seeding %d defaults", len(c.products))
	case err != nil:
		return nil, fmt.Errorf("load products: %w", err)
	default:
		if err := json.Unmarshal(data, &c.products); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
	}

	for i, p := range c.products {
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s in persisted document", ErrDuplicateID, p.ID)
		}
		c.index[p.ID] = i
	}

	if errors.Is(err, store.ErrNotFound) {
		c.flush(ctx)
	}
	return c, nil
}

func validate(p model.Product) error {
	if p.Name == "" || p.Category == "" {
		return fmt.Errorf("%w: name and category are required", ErrInvalidProduct)
	}
	if p.Price < 0 || p.Stock < 0 || p.MinStock < 0 {
		return fmt.Errorf("%w: price, stock and minStock must not be negative", ErrInvalidProduct)
	}
	if !p.Unit.Valid() {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidProduct, p.Unit)
	}
	return nil
}

// Add inserts a new product. The id must already be assigned and unique.
func (c *Catalog) Add(ctx context.Context, p model.Product) error {
	if err := validate(p); err != nil {
		return err
	}
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[p.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	c.products = append(c.products, p)
	c.index[p.ID] = len(c.products) - 1

	c.flush(ctx)
	return nil
}

// AdjustStock applies a signed delta (restock positive, sale negative).
// Stok di-clamp ke 0, tidak pernah negatif.
func (c *Catalog) AdjustStock(ctx context.Context, id string, delta int) (model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	newStock := c.products[i].Stock + delta
	if newStock < 0 {
		newStock = 0
	}
	c.products[i].Stock = newStock

	c.flush(ctx)
	return c.products[i], nil
}

// Decrements maps product id -> quantity sold.
type Decrements map[string]int

// CanSatisfy melaporkan apakah stok on-hand cukup untuk seluruh decrement.
// Dipakai hanya saat kebijakan oversell dimatikan.
func (c *Catalog) CanSatisfy(dec Decrements) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, qty := range dec {
		i, ok := c.index[id]
		if !ok || c.products[i].Stock < qty {
			return false
		}
	}
	return true
}

// ApplyDecrements is the commit-side stock write: it validates that every id
// exists before touching anything, then applies all the clamp-floored
// decrements and flushes once. Either every line lands or none does.
func (c *Catalog) ApplyDecrements(ctx context.Context, dec Decrements) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range dec {
		if _, ok := c.index[id]; !ok {
			return fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
	}
	for id, qty := range dec {
		i := c.index[id]
		newStock := c.products[i].Stock - qty
		if newStock < 0 {
			newStock = 0
		}
		c.products[i].Stock = newStock
	}

	c.flush(ctx)
	return nil
}

// Update replaces the whole record matched by id.
func (c *Catalog) Update(ctx context.Context, p model.Product) error {
	if err := validate(p); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, p.ID)
	}
	c.products[i] = p

	c.flush(ctx)
	return nil
}

// Get returns a copy of one product.
func (c *Catalog) Get(id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return c.products[i], nil
}

// List returns a snapshot of the full catalog in insertion order.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find returns snapshot copies matching q: case-insensitive name search,
// exact category filter, optional alphabetical sort.
func (c *Catalog) Find(q Query) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(q.Search)
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	}
	return out
}

// Categories returns the distinct category labels, sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// LowStock returns every product at or below its reorder threshold.
func (c *Catalog) LowStock() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Product
	for _, p := range c.products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// TotalStockValue menjumlahkan valuasi stok (price * stock) seluruh katalog.
func (c *Catalog) TotalStockValue() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, p := range c.products {
		total += p.StockValue()
	}
	return total
}

// flush persists the whole document. In-memory state is the source of truth;
// a failed flush is logged and the next successful flush repairs the gap.
// Caller harus pegang c.mu.
func (c *Catalog) flush(ctx context.Context) {
	data, err := json.Marshal(c.products)
	if err != nil {
		log.Printf("catalog: encode products failed: %v", err)
		return
	}
	if err := c.store.Save(ctx, store.KeyProducts, data); err != nil {
		log.Printf("catalog: persist products failed: %v", err)
	}
}
