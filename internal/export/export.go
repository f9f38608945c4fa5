// Package export renders filtered ledger rows into tabular reports for the
// history screen. Pure functions of ledger state; no core invariants here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/pkg/currency"
)

var header = []string{"ID", "Tanggal", "Total", "Metode", "Produk"}

// itemSummary merangkum line items jadi satu kolom: "Nama (qty); Nama (qty)".
func itemSummary(items []model.CartItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (%d)", item.Name, item.Quantity)
	}
	return strings.Join(parts, "; ")
}

// WriteCSV streams the sales report in the layout the history screen expects.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, tx := range txs {
		record := []string{
			tx.ID,
			tx.Date.Format("02/01/2006 15:04"),
			strconv.FormatInt(tx.Total, 10),
			tx.PaymentMethod.Label(),
			itemSummary(tx.Items),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders a fixed-width text table of the same columns, dipakai
// CLI report.
func WriteTable(w io.Writer, txs []model.Transaction) error {
	const format = "%-18s  %-16s  %14s  %-16s  %s\n"

	if _, err := fmt.Fprintf(w, format, header[0], header[1], header[2], header[3], header[4]); err != nil {
		return err
	}
	for _, tx := range txs {
		_, err := fmt.Fprintf(w, format,
			tx.ID,
			tx.Date.Format("02/01/2006 15:04"),
			currency.FormatIDR(tx.Total),
			tx.PaymentMethod.Label(),
			itemSummary(tx.Items),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
