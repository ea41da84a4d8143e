package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	applog "essencia/internal/log"
	"essencia/internal/services"
	"essencia/internal/validate"
)

const genericError = "Something went wrong. Please try again."

// pathParam returns a path parameter percent-decoded. A literal "+" stays a
// plus sign. Malformed escapes are returned as sent.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

// bind decodes the JSON body into dst and runs its validation rules.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return validate.BadBody(err)
	}
	return validate.Struct(dst)
}

// fail maps a handler error to a status code and JSON body. Anything that is
// not a validation, not-found or conflict error is logged and reduced to a
// 500 with internalMsg.
func fail(c *fiber.Ctx, action string, err error, notFoundMsg, internalMsg string) error {
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field)
		}
		c.Status(fiber.StatusBadRequest)
		applog.Security(c, "validation.fail", map[string]any{"action": action, "fields": fields})
		return c.JSON(fiber.Map{"error": verrs})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	case errors.Is(err, services.ErrPhoneTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Phone already registered"})
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, action+".fail", err, nil)
	return c.JSON(fiber.Map{"error": internalMsg})
}

// ErrorHandler is the app-wide fallback for errors that escape a handler.
// Client errors keep their message; server errors never expose internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := genericError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code, msg = fe.Code, fe.Message
	}
	c.Status(code)
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return c.JSON(fiber.Map{"error": msg})
}
