package handler

import (
	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetProducts mendukung query search + filter kategori + sort abjad.
// Query params: q, category, sort (asc|desc)
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	q := catalog.Query{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     catalog.SortOrder(c.Query("sort")),
	}
	return c.JSON(h.service.GetProducts(q))
}

func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	return c.JSON(h.service.LowStock())
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(c.Context(), &product); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(c.Context(), c.Params("id"), &product)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// RestockProduct menambah (atau mengoreksi) stok lewat layar inventory.
// Body: {"amount": 10}
func (h *InventoryHandler) RestockProduct(c *fiber.Ctx) error {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Restock(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock adjusted", "data": updated})
}
