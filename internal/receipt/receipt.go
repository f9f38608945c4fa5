// Package receipt renders one committed Transaction into the fixed-width
// printable layout used by the till printer. Formatting only; no core logic.
package receipt

import (
	"fmt"
	"strings"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/pkg/currency"
)

const width = 32

var divider = strings.Repeat("-", width)

// StoreInfo adalah header struk, diambil dari konfigurasi.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// Render produces the receipt as plain text, 32 kolom, layout printer thermal.
func Render(info StoreInfo, tx model.Transaction) string {
	var b strings.Builder

	center(&b, strings.ToUpper(info.Name))
	center(&b, info.Address)
	center(&b, "Telp: "+info.Phone)
	b.WriteString(divider + "\n")

	fmt.Fprintf(&b, "No: %s\n", tx.ID)
	fmt.Fprintf(&b, "Tgl: %s\n", tx.Date.Format("02/01/2006 15:04"))
	b.WriteString(divider + "\n")

	for _, item := range tx.Items {
		b.WriteString(item.Name + "\n")
		qty := fmt.Sprintf("  %d %s x %s", item.Quantity, item.Unit, currency.Group(item.Price))
		line(&b, qty, currency.Group(item.Subtotal()))
	}
	b.WriteString(divider + "\n")

	line(&b, "TOTAL", currency.FormatIDR(tx.Total))
	line(&b, fmt.Sprintf("Bayar (%s)", tx.PaymentMethod.Label()), currency.FormatIDR(tx.AmountPaid))
	line(&b, "Kembali", currency.FormatIDR(tx.Change))
	if tx.PaymentMethod == model.PayTransfer {
		line(&b, "Via", tx.PaymentProvider)
	}
	b.WriteString(divider + "\n")

	center(&b, "TERIMA KASIH")
	center(&b, "BARANG YANG SUDAH DIBELI")
	center(&b, "TIDAK DAPAT DITUKAR/DIKEMBALIKAN")
	return b.String()
}

// line tulis label kiri dan nilai rata kanan dalam satu baris.
func line(b *strings.Builder, left, right string) {
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
}

func center(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}
