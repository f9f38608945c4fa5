package model

import "time"

type PaymentMethod string

const (
	PayCash     PaymentMethod = "CASH"
	PayQRIS     PaymentMethod = "QRIS"
	PayTransfer PaymentMethod = "TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayQRIS, PayTransfer:
		return true
	}
	return false
}

// Label untuk display kasir / struk.
func (m PaymentMethod) Label() string {
	switch m {
	case PayCash:
		return "Tunai"
	case PayQRIS:
		return "QRIS"
	case PayTransfer:
		return "Transfer/Digital"
	}
	return string(m)
}

// KnownProviders are the transfer destinations shown at the till.
var KnownProviders = []string{"BCA", "BRI", "Mandiri", "BNI", "DANA", "GoPay", "OVO", "ShopeePay"}

// CartItem is a point-in-time copy of a Product plus a sold quantity. It
// never aliases the catalog record it was copied from, so later catalog
// edits cannot reach into a cart or into transaction history.
type CartItem struct {
	Product
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// Subtotal harga line: price * quantity.
func (ci CartItem) Subtotal() int64 {
	return ci.Price * int64(ci.Quantity)
}

// Transaction is one completed sale. Once appended to the ledger it is never
// mutated or removed; Items are snapshots priced as at the moment of sale.
type Transaction struct {
	ID              string        `json:"id"`
	Date            time.Time     `json:"date"`
	Items           []CartItem    `json:"items"`
	Total           int64         `json:"total"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentProvider string        `json:"paymentProvider,omitempty"`
	AmountPaid      int64         `json:"amountPaid"`
	Change          int64         `json:"change"`
}

// Clone returns a deep copy so ledger reads can never leak a mutable
// reference to the stored record.
func (t Transaction) Clone() Transaction {
	out := t
	out.Items = make([]CartItem, len(t.Items))
	copy(out.Items, t.Items)
	return out
}
