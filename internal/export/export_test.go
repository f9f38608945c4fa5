package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"go-pos-kasir/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTxs() []model.Transaction {
	date := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	return []model.Transaction{
		{
			ID:            "TRX-AAA111",
			Date:          date,
			Total:         25000,
			PaymentMethod: model.PayCash,
			Items: []model.CartItem{
				{Product: model.Product{Name: "Beras 5kg"}, Quantity: 2},
				{Product: model.Product{Name: "Gula 1kg"}, Quantity: 1},
			},
		},
		{
			ID:            "TRX-BBB222",
			Date:          date.Add(-time.Hour),
			Total:         38000,
			PaymentMethod: model.PayTransfer,
			Items: []model.CartItem{
				{Product: model.Product{Name: "Minyak Goreng 2L"}, Quantity: 1},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTxs()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Tanggal", "Total", "Metode", "Produk"}, records[0])
	assert.Equal(t, "TRX-AAA111", records[1][0])
	assert.Equal(t, "10/03/2025 14:30", records[1][1])
	assert.Equal(t, "25000", records[1][2])
	assert.Equal(t, "Tunai", records[1][3])
	assert.Equal(t, "Beras 5kg (2); Gula 1kg (1)", records[1][4])
	assert.Equal(t, "Transfer/Digital", records[2][3])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "header only")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleTxs()))

	out := buf.String()
	assert.Contains(t, out, "TRX-AAA111")
	assert.Contains(t, out, "Rp 25.000")
	assert.Contains(t, out, "Transfer/Digital")
	assert.Contains(t, out, "Minyak Goreng 2L (1)")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}
