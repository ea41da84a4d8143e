package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essencia/internal/config"
	"essencia/internal/http/handlers"
)

// server failures get a generic message and no internal detail
func TestErrorHandlerHidesInternals(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("nil map in secret handler")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	entries := captureLogs(t, func() {
		for _, path := range []string{"/err", "/panic"} {
			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
			body, _ := io.ReadAll(resp.Body)
			s := string(body)
			assert.Contains(t, s, "Something went wrong", path)
			assert.False(t, strings.Contains(s, "secret"), "internal details leaked on %s: %s", path, s)
		}
	})
	e, ok := findAction(entries, "server.error")
	require.True(t, ok, "server errors must be logged")
	assert.Contains(t, e.Err, "secret")
	assert.NotEmpty(t, e.ReqID)
	assert.Equal(t, http.StatusInternalServerError, e.Status)

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "short and stout")
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app, _ := newTestApp(t, config.Config{})

	var body map[string]any
	assert.Equal(t, http.StatusNotFound, call(t, app, jsonReq("GET", "/api/nope", nil), &body))
	assert.Equal(t, "Not found", body["error"])
}

func TestHealthz(t *testing.T) {
	app, db := newTestApp(t, config.Config{})

	var body map[string]any
	require.Equal(t, http.StatusOK, call(t, app, jsonReq("GET", "/healthz", nil), &body))
	assert.Equal(t, true, body["ok"])

	require.NoError(t, db.Close())
	assert.Equal(t, http.StatusServiceUnavailable, call(t, app, jsonReq("GET", "/healthz", nil), nil))
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	app, db := newTestApp(t, config.Config{})
	require.NoError(t, db.Close())

	var body map[string]any
	entries := captureLogs(t, func() {
		assert.Equal(t, http.StatusInternalServerError, call(t, app, jsonReq("GET", "/api/products", nil), &body))
	})
	assert.Equal(t, "Failed to fetch products", body["error"])
	_, ok := findAction(entries, "products.list.fail")
	assert.True(t, ok)
}
