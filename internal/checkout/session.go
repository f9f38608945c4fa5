package checkout

import (
	"errors"
	"fmt"

	"go-pos-kasir/internal/model"
)

// State dari satu sesi kasir. Committed dan Cancelled adalah terminal.
type State string

const (
	StateBuilding        State = "BUILDING"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateCommitted       State = "COMMITTED"
	StateCancelled       State = "CANCELLED"
)

var (
	ErrInvalidState        = errors.New("checkout: operation not allowed in current state")
	ErrEmptyCart           = errors.New("checkout: cart is empty")
	ErrInvalidQuantity     = errors.New("checkout: quantity must be positive")
	ErrInvalidMethod       = errors.New("checkout: unknown payment method")
	ErrInvalidAmount       = errors.New("checkout: amount paid must not be negative")
	ErrCashOnly            = errors.New("checkout: amount paid applies to cash payments only")
	ErrTransferOnly        = errors.New("checkout: provider applies to transfer payments only")
	ErrInsufficientPayment = errors.New("checkout: amount paid is less than total")
	ErrProviderRequired    = errors.New("checkout: transfer requires a bank or e-wallet provider")
)

// Session is one till workflow: Building -> AwaitingPayment -> Committed or
// Cancelled. A failed call leaves the state exactly where it was. The session
// only assembles the cart and payment input; applying the sale to ledger and
// catalog is the commit coordinator's job.
type Session struct {
	state      State
	items      []model.CartItem
	method     model.PaymentMethod
	provider   string
	amountPaid int64
}

// NewSession starts a fresh Building session paying cash by default,
// mengikuti default layar kasir.
func NewSession() *Session {
	return &Session{state: StateBuilding, method: model.PayCash}
}

func (s *Session) State() State { return s.state }

func (s *Session) Method() model.PaymentMethod { return s.method }

func (s *Session) Provider() string { return s.provider }

func (s *Session) AmountPaid() int64 { return s.amountPaid }

// Items returns a snapshot copy of the cart lines.
func (s *Session) Items() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total = sigma price*qty over the current cart.
func (s *Session) Total() int64 {
	var total int64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// AddItem menambah produk ke cart; kalau sudah ada, quantity dijumlahkan.
// Tidak ada cek stok di tahap ini: stok hanya dicek/dikurangi saat commit.
func (s *Session) AddItem(p model.Product, qty int) error {
	if s.state != StateBuilding {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += qty
			return nil
		}
	}
	s.items = append(s.items, model.CartItem{Product: p, Quantity: qty})
	return nil
}

// SetQuantity sets an existing line's quantity; clamped at 0, and 0 removes
// the line. Unknown ids are ignored, mengikuti perilaku layar kasir.
func (s *Session) SetQuantity(productID string, qty int) error {
	if s.state != StateBuilding {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if qty < 0 {
		qty = 0
	}

	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}
		if qty == 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = qty
		}
		return nil
	}
	return nil
}

// ProceedToPayment moves a non-empty cart to AwaitingPayment.
func (s *Session) ProceedToPayment() error {
	if s.state != StateBuilding {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if len(s.items) == 0 {
		return ErrEmptyCart
	}
	s.state = StateAwaitingPayment
	return nil
}

// SelectPaymentMethod switches the method, resetting any provider and amount
// entered for the previous one.
func (s *Session) SelectPaymentMethod(m model.PaymentMethod) error {
	if s.state != StateAwaitingPayment {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, m)
	}
	if m != s.method {
		s.provider = ""
		s.amountPaid = 0
	}
	s.method = m
	return nil
}

// SetAmountPaid records tendered cash. Not compared against the total here;
// that check belongs to commit.
func (s *Session) SetAmountPaid(amount int64) error {
	if s.state != StateAwaitingPayment {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if s.method != model.PayCash {
		return ErrCashOnly
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	s.amountPaid = amount
	return nil
}

// SetProvider records the transfer destination (bank / e-wallet label).
func (s *Session) SetProvider(name string) error {
	if s.state != StateAwaitingPayment {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	if s.method != model.PayTransfer {
		return ErrTransferOnly
	}
	s.provider = name
	return nil
}

// ValidateForCommit runs the commit preconditions in contract order. It reads
// only; the session is untouched whatever the outcome.
func (s *Session) ValidateForCommit() error {
	if len(s.items) == 0 {
		return ErrEmptyCart
	}
	switch s.method {
	case model.PayCash:
		if s.amountPaid < s.Total() {
			return ErrInsufficientPayment
		}
	case model.PayTransfer:
		if s.provider == "" {
			return ErrProviderRequired
		}
	}
	return nil
}

// MarkCommitted finalizes the terminal transition after a successful commit.
func (s *Session) MarkCommitted() {
	s.state = StateCommitted
}

// Cancel discards the session with no side effects. Allowed from Building or
// AwaitingPayment.
func (s *Session) Cancel() error {
	if s.state != StateBuilding && s.state != StateAwaitingPayment {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	s.state = StateCancelled
	return nil
}
