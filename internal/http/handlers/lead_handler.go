package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "essencia/internal/log"
	"essencia/internal/services"
	"essencia/internal/validate"
)

type LeadHandler struct {
	Leads *services.LeadService
}

// GET /api/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	ls, err := h.Leads.List(c.UserContext())
	if err != nil {
		return fail(c, "leads.list", err, "", "Failed to fetch leads")
	}
	return c.JSON(ls)
}

// POST /api/leads/register
func (h *LeadHandler) Register(c *fiber.Ctx) error {
	var in validate.LeadRegistration
	if err := bind(c, &in); err != nil {
		return fail(c, "leads.register", err, "", "Failed to register lead")
	}
	l, err := h.Leads.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, "leads.register", err, "", "Failed to register lead")
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "leads.register", map[string]any{"lead_id": l.ID})
	return c.JSON(l)
}

// POST /api/leads/login
func (h *LeadHandler) Login(c *fiber.Ctx) error {
	var in validate.LeadLogin
	if err := bind(c, &in); err != nil {
		return fail(c, "leads.login", err, "", "Failed to login")
	}
	in.Phone = strings.TrimSpace(in.Phone)
	l, err := h.Leads.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, "leads.login", err, "Phone not registered", "Failed to login")
	}
	applog.Info(c, "leads.login", map[string]any{"lead_id": l.ID})
	return c.JSON(l)
}

// GET /api/leads/phone/:phone
func (h *LeadHandler) ByPhone(c *fiber.Ctx) error {
	l, err := h.Leads.ByPhone(c.UserContext(), pathParam(c, "phone"))
	if err != nil {
		return fail(c, "leads.phone", err, "Lead not found", "Failed to fetch lead")
	}
	return c.JSON(l)
}
