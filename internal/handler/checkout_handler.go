package handler

import (
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	service service.CheckoutService
}

func NewCheckoutHandler(s service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// GetSession mengembalikan snapshot sesi kasir aktif.
func (h *CheckoutHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(h.service.Session())
}

// AddItem menambah produk ke cart. Body: {"productId": "...", "quantity": 1}
func (h *CheckoutHandler) AddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.service.AddItem(c.Context(), req.ProductID, req.Quantity); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(h.service.Session())
}

// SetQuantity mengganti qty satu line; 0 menghapus line.
func (h *CheckoutHandler) SetQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SetQuantity(c.Context(), c.Params("id"), req.Quantity); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.service.Session())
}

func (h *CheckoutHandler) Proceed(c *fiber.Ctx) error {
	if err := h.service.ProceedToPayment(); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.service.Session())
}

// SetPayment mengatur metode, amount tunai, dan/atau provider transfer
// sekaligus. Field yang tidak dikirim tidak disentuh.
func (h *CheckoutHandler) SetPayment(c *fiber.Ctx) error {
	var req struct {
		Method     model.PaymentMethod `json:"paymentMethod"`
		AmountPaid *int64              `json:"amountPaid"`
		Provider   *string             `json:"paymentProvider"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Method != "" {
		if err := h.service.SelectPaymentMethod(req.Method); err != nil {
			return fail(c, err)
		}
	}
	if req.AmountPaid != nil {
		if err := h.service.SetAmountPaid(*req.AmountPaid); err != nil {
			return fail(c, err)
		}
	}
	if req.Provider != nil {
		if err := h.service.SetProvider(*req.Provider); err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(h.service.Session())
}

// Commit finalizes the sale; on success the response carries the recorded
// transaction and a fresh Building session is already active.
func (h *CheckoutHandler) Commit(c *fiber.Ctx) error {
	tx, err := h.service.Commit(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": tx})
}

func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	if err := h.service.Cancel(); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.service.Session())
}
