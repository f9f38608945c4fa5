package handler

import (
	"errors"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/checkout"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail maps domain sentinels onto HTTP statuses. Semua error validasi lokal,
// tidak ada retry semantics; UI tinggal menampilkan pesannya.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateID):
		status = fiber.StatusConflict
	case errors.Is(err, checkout.ErrInvalidState):
		status = fiber.StatusConflict
	case errors.Is(err, checkout.ErrInsufficientPayment),
		errors.Is(err, checkout.ErrProviderRequired),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientStock):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
