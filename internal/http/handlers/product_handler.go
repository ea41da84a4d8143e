package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "essencia/internal/log"
	"essencia/internal/services"
	"essencia/internal/validate"
)

const productNotFound = "Product not found"

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return fail(c, "products.list", err, "", "Failed to fetch products")
	}
	return c.JSON(ps)
}

// GET /api/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": productNotFound})
	}
	p, err := h.Catalog.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.get", err, productNotFound, "Failed to fetch product")
	}
	return c.JSON(p)
}

// GET /api/products/category/:category
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	ps, err := h.Catalog.ByCategory(c.UserContext(), pathParam(c, "category"))
	if err != nil {
		return fail(c, "products.category", err, "", "Failed to fetch products")
	}
	return c.JSON(ps)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in validate.ProductInput
	if err := bind(c, &in); err != nil {
		return fail(c, "products.create", err, "", "Failed to create product")
	}
	p, err := h.Catalog.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "products.create", err, "", "Failed to create product")
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID, "name": p.Name, "price": p.DisplayPrice().String()})
	return c.JSON(p)
}

// PATCH /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": productNotFound})
	}
	var patch validate.ProductPatch
	if err := bind(c, &patch); err != nil {
		return fail(c, "products.update", err, productNotFound, "Failed to update product")
	}
	p, err := h.Catalog.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "products.update", err, productNotFound, "Failed to update product")
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id, "price": p.DisplayPrice().String()})
	return c.JSON(p)
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": productNotFound})
	}
	if err := h.Catalog.Delete(c.UserContext(), id); err != nil {
		return fail(c, "products.delete", err, productNotFound, "Failed to delete product")
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"success": true})
}
