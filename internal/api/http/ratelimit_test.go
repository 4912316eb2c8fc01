package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironhall/gym-service/internal/config"
)

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	assert.True(t, rl.allow("10.0.0.2"), "budgets are per ip")

	now = now.Add(time.Second)
	assert.True(t, rl.allow("10.0.0.1"), "one token refills per second")
}

func TestRateLimiter_PrunesIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.lastPrune = now

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")
	require.Equal(t, 2, rl.size())

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.allow("10.0.0.3")
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(testLogger(), nil)})
	app.Post("/login", rl.Limit, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_KeysOnProxyHeader(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	app := fiber.New(ServerConfig(config.AppConfig{ProxyHeader: fiber.HeaderXForwardedFor}, testLogger(), nil))
	app.Post("/qr-login", rl.Limit, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/qr-login", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, client)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.10"))
	assert.Equal(t, http.StatusOK, send("203.0.113.11"), "clients behind one proxy get separate budgets")
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.10"))
	assert.Equal(t, http.StatusOK, send("198.51.100.7, 10.0.0.2"), "first address of a forwarded chain is the client")
	assert.Equal(t, 3, rl.size())
}

func TestServerConfig_TrustedProxies(t *testing.T) {
	cfg := ServerConfig(config.AppConfig{
		Name:           "gym-service",
		ProxyHeader:    fiber.HeaderXForwardedFor,
		TrustedProxies: "10.0.0.1",
	}, testLogger(), nil)

	assert.Equal(t, "gym-service", cfg.AppName)
	assert.True(t, cfg.EnableTrustedProxyCheck)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.TrustedProxies)
	assert.NotNil(t, cfg.ErrorHandler)

	plain := ServerConfig(config.AppConfig{}, testLogger(), nil)
	assert.Empty(t, plain.ProxyHeader)
	assert.False(t, plain.EnableTrustedProxyCheck)
}
