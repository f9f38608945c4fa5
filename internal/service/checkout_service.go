package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/checkout"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/ws"

	"github.com/google/uuid"
)

// ErrInsufficientStock hanya muncul saat kebijakan oversell dimatikan
// (pos.allow_oversell=false); default-nya penjualan tetap jalan dan stok
// di-clamp ke 0.
var ErrInsufficientStock = errors.New("checkout: not enough stock on hand")

// SessionView is the JSON shape of the active till session.
type SessionView struct {
	State      checkout.State      `json:"state"`
	Items      []model.CartItem    `json:"items"`
	Total      int64               `json:"total"`
	Method     model.PaymentMethod `json:"paymentMethod"`
	Provider   string              `json:"paymentProvider,omitempty"`
	AmountPaid int64               `json:"amountPaid"`
}

type CheckoutService interface {
	Session() SessionView
	AddItem(ctx context.Context, productID string, qty int) error
	SetQuantity(ctx context.Context, productID string, qty int) error
	ProceedToPayment() error
	SelectPaymentMethod(m model.PaymentMethod) error
	SetAmountPaid(amount int64) error
	SetProvider(name string) error
	Commit(ctx context.Context) (*model.Transaction, error)
	Cancel() error
}

// checkoutService menjalankan satu till: satu sesi aktif pada satu waktu,
// sesi baru dibuat otomatis setelah commit atau cancel.
type checkoutService struct {
	mu            sync.Mutex
	session       *checkout.Session
	catalog       *catalog.Catalog
	ledger        *ledger.Ledger
	wsHub         *ws.Hub
	allowOversell bool
	now           func() time.Time
}

func NewCheckoutService(cat *catalog.Catalog, led *ledger.Ledger, hub *ws.Hub, allowOversell bool) CheckoutService {
	return &checkoutService{
		session:       checkout.NewSession(),
		catalog:       cat,
		ledger:        led,
		wsHub:         hub,
		allowOversell: allowOversell,
		now:           time.Now,
	}
}

func (s *checkoutService) Session() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// view harus dipanggil dengan s.mu tergenggam.
func (s *checkoutService) view() SessionView {
	return SessionView{
		State:      s.session.State(),
		Items:      s.session.Items(),
		Total:      s.session.Total(),
		Method:     s.session.Method(),
		Provider:   s.session.Provider(),
		AmountPaid: s.session.AmountPaid(),
	}
}

// AddItem copies the product out of the catalog into the cart. The cart line
// keeps the price and name as of now; later catalog edits don't reach it.
func (s *checkoutService) AddItem(_ context.Context, productID string, qty int) error {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AddItem(product, qty)
}

func (s *checkoutService) SetQuantity(_ context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetQuantity(productID, qty)
}

func (s *checkoutService) ProceedToPayment() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ProceedToPayment()
}

func (s *checkoutService) SelectPaymentMethod(m model.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectPaymentMethod(m)
}

func (s *checkoutService) SetAmountPaid(amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetAmountPaid(amount)
}

func (s *checkoutService) SetProvider(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetProvider(name)
}

// Commit finalizes the active session: validate everything first, then apply
// the ledger append and every stock decrement as one unit with no observable
// in-between state. On any validation failure the session, catalog and
// ledger are all left untouched.
func (s *checkoutService) Commit(ctx context.Context) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.State() != checkout.StateAwaitingPayment {
		return nil, fmt.Errorf("%w: %s", checkout.ErrInvalidState, s.session.State())
	}
	if err := s.session.ValidateForCommit(); err != nil {
		return nil, err
	}

	// Kumpulkan seluruh write dulu, baru diterapkan.
	items := s.session.Items()
	decrements := make(catalog.Decrements, len(items))
	for _, item := range items {
		// Produk harus masih ada di katalog sebelum ada yang ditulis.
		if _, err := s.catalog.Get(item.ID); err != nil {
			return nil, err
		}
		decrements[item.ID] += item.Quantity
	}
	if !s.allowOversell && !s.catalog.CanSatisfy(decrements) {
		return nil, ErrInsufficientStock
	}

	total := s.session.Total()
	tx := model.Transaction{
		ID:            newTransactionID(),
		Date:          s.now(),
		Items:         items,
		Total:         total,
		PaymentMethod: s.session.Method(),
	}
	switch tx.PaymentMethod {
	case model.PayCash:
		tx.PaymentProvider = "Tunai"
		tx.AmountPaid = s.session.AmountPaid()
		tx.Change = tx.AmountPaid - total
		if tx.Change < 0 {
			tx.Change = 0
		}
	case model.PayQRIS:
		tx.PaymentProvider = "QRIS"
		tx.AmountPaid = total
	case model.PayTransfer:
		tx.PaymentProvider = s.session.Provider()
		tx.AmountPaid = total
	}

	// Satu unit logis: append + seluruh decrement. Preconditions sudah lolos
	// semua, jadi ApplyDecrements tidak bisa gagal di tengah jalan.
	s.ledger.Append(ctx, tx)
	if err := s.catalog.ApplyDecrements(ctx, decrements); err != nil {
		// Tidak tercapai selama pre-check di atas jalan; jangan ditelan.
		return nil, fmt.Errorf("apply stock decrements after ledger append: %w", err)
	}

	s.session.MarkCommitted()
	s.session = checkout.NewSession()

	s.wsHub.Publish("sale_committed", map[string]interface{}{
		"transaction": tx,
		"lowStock":    s.catalog.LowStock(),
	})

	return &tx, nil
}

// Cancel membuang sesi aktif tanpa efek samping dan membuka sesi baru.
func (s *checkoutService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Cancel(); err != nil {
		return err
	}
	s.session = checkout.NewSession()
	return nil
}

// newTransactionID is collision-resistant: TRX- prefix (receipt convention)
// over a UUID, uppercased without dashes.
func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRX-" + strings.ToUpper(raw[:12])
}
