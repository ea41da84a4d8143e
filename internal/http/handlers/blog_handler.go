package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "essencia/internal/log"
	"essencia/internal/services"
	"essencia/internal/validate"
)

const postNotFound = "Post not found"

type BlogHandler struct {
	Blog *services.BlogService
}

// GET /api/blog?page=&limit=
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"))
	res, err := h.Blog.Page(c.UserContext(), page, limit)
	if err != nil {
		return fail(c, "blog.list", err, "", "Failed to fetch blog posts")
	}
	return c.JSON(res)
}

// GET /api/blog/:id
func (h *BlogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": postNotFound})
	}
	p, err := h.Blog.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "blog.get", err, postNotFound, "Failed to fetch blog post")
	}
	return c.JSON(p)
}

// POST /api/blog
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var in validate.BlogPostInput
	if err := bind(c, &in); err != nil {
		return fail(c, "blog.create", err, "", "Failed to create blog post")
	}
	p, err := h.Blog.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "blog.create", err, "", "Failed to create blog post")
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "blog.create", map[string]any{"post_id": p.ID, "product_id": p.ProductID})
	return c.JSON(p)
}
