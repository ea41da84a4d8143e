package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"essencia/internal/config"
	applog "essencia/internal/log"
)

// RequireAdmin guards the catalog and blog write routes with basic auth. When
// no admin credentials are configured the routes stay open.
func RequireAdmin(cfg config.Config) fiber.Handler {
	if !cfg.AdminEnabled() {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	user := []byte(cfg.AdminUser)
	hash := []byte(cfg.AdminPasswordHash)
	return basicauth.New(basicauth.Config{
		Realm: "essencia admin",
		Authorizer: func(u, p string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(u), user) == 1
			passOK := bcrypt.CompareHashAndPassword(hash, []byte(p)) == nil
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusUnauthorized)
			applog.Security(c, "access.denied.admin", nil)
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="essencia admin"`)
			return c.JSON(fiber.Map{"error": "Unauthorized"})
		},
	})
}
