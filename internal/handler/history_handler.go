package handler

import (
	"bytes"
	"fmt"
	"time"

	"go-pos-kasir/internal/export"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/receipt"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	ledger    *ledger.Ledger
	storeInfo receipt.StoreInfo
}

func NewHistoryHandler(led *ledger.Ledger, info receipt.StoreInfo) *HistoryHandler {
	return &HistoryHandler{ledger: led, storeInfo: info}
}

func filterFromQuery(c *fiber.Ctx) ledger.Filter {
	return ledger.Filter{
		ID:   c.Query("search"),
		Date: c.Query("date"), // prefix YYYY-MM-DD
	}
}

// GetTransactions lists sales history, newest first.
// Query params: search (substring ID), date (YYYY-MM-DD)
func (h *HistoryHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Query(filterFromQuery(c)))
}

func (h *HistoryHandler) GetTransaction(c *fiber.Ctx) error {
	tx, err := h.ledger.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(tx)
}

// GetReceipt renders the printable receipt for one sale.
func (h *HistoryHandler) GetReceipt(c *fiber.Ctx) error {
	tx, err := h.ledger.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(receipt.Render(h.storeInfo, tx))
}

// ExportCSV mengunduh laporan penjualan terfilter sebagai CSV.
func (h *HistoryHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, h.ledger.Query(filterFromQuery(c))); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	filename := fmt.Sprintf("Laporan-Penjualan-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
