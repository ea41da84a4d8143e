package handlers

import (
	"github.com/gofiber/fiber/v2"

	"essencia/internal/services"
	"essencia/internal/validate"
)

type ViewedHandler struct {
	Interests *services.InterestService
}

// POST /api/viewed-products
func (h *ViewedHandler) Add(c *fiber.Ctx) error {
	var in validate.ViewedProductInput
	if err := bind(c, &in); err != nil {
		return fail(c, "viewed.add", err, "", "Failed to add viewed product")
	}
	v, err := h.Interests.Record(c.UserContext(), in.LeadID, in.ProductID)
	if err != nil {
		return fail(c, "viewed.add", err, "", "Failed to add viewed product")
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// GET /api/viewed-products/:leadId
func (h *ViewedHandler) List(c *fiber.Ctx) error {
	leadID, ok := validate.ID(c.Params("leadId"))
	if !ok {
		return fail(c, "viewed.list", validate.Errors{{Field: "leadId", Rule: "id", Message: "must be a positive integer"}}, "", "")
	}
	vs, err := h.Interests.List(c.UserContext(), leadID)
	if err != nil {
		return fail(c, "viewed.list", err, "", "Failed to fetch viewed products")
	}
	return c.JSON(vs)
}
