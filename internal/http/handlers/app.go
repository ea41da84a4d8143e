package handlers

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"essencia/internal/config"
	applog "essencia/internal/log"
)

// NewApp builds the API with its middleware chain and routes. accessLog
// receives one line per request; nil discards them.
func NewApp(d *Deps, cfg config.Config, accessLog io.Writer) *fiber.App {
	if accessLog == nil {
		accessLog = io.Discard
	}
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:      "essencia",
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: accessLog,
	}))
	app.Use(helmet.New())
	if origins := strings.TrimSpace(cfg.AllowOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: origins != "*",
		}))
	}
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/healthz"
			},
			LimitReached: func(c *fiber.Ctx) error {
				c.Status(fiber.StatusTooManyRequests)
				applog.Security(c, "rate.limit.hit", nil)
				return c.JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
			},
		}))
	}

	Routes(app, d, RequireAdmin(cfg))
	return app
}

// Routes mounts the API on app. admin guards the catalog and blog writes.
func Routes(app *fiber.App, d *Deps, admin fiber.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if d.Ping != nil {
			if err := d.Ping(c.UserContext()); err != nil {
				c.Status(fiber.StatusServiceUnavailable)
				applog.Error(c, "healthz.fail", err, nil)
				return c.JSON(fiber.Map{"ok": false})
			}
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Products
	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/category/:category", d.ProductHandler.ByCategory)
	api.Get("/products/:id", d.ProductHandler.Detail)
	api.Post("/products", admin, d.ProductHandler.Create)
	api.Patch("/products/:id", admin, d.ProductHandler.Update)
	api.Delete("/products/:id", admin, d.ProductHandler.Delete)

	// Leads
	api.Get("/leads", d.LeadHandler.List)
	api.Post("/leads/register", d.LeadHandler.Register)
	api.Post("/leads/login", d.LeadHandler.Login)
	api.Get("/leads/phone/:phone", d.LeadHandler.ByPhone)

	// Viewed products
	api.Post("/viewed-products", d.ViewedHandler.Add)
	api.Get("/viewed-products/:leadId", d.ViewedHandler.List)

	// Blog
	api.Get("/blog", d.BlogHandler.List)
	api.Get("/blog/:id", d.BlogHandler.Detail)
	api.Post("/blog", admin, d.BlogHandler.Create)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
}
