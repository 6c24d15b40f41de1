package middleware

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"

	"AreejShop/config"
)

func runCORS(t *testing.T, method, origin string) *app.RequestContext {
	t.Helper()
	c := app.NewContext(0)
	c.Request.Header.SetMethod(method)
	if origin != "" {
		c.Request.Header.Set("Origin", origin)
	}
	CORSMiddleware()(context.Background(), c)
	return c
}

func TestCORSEchoesAnyOriginWithoutAllowlist(t *testing.T) {
	config.Cfg.CORSAllowedOrigins = ""

	c := runCORS(t, "GET", "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", c.Response.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", c.Response.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	config.Cfg.CORSAllowedOrigins = "https://areej.shop, https://admin.areej.shop"
	defer func() { config.Cfg.CORSAllowedOrigins = "" }()

	c := runCORS(t, "GET", "https://evil.example")
	assert.Empty(t, c.Response.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, c.Response.Header.Get("Access-Control-Allow-Credentials"))

	c = runCORS(t, "GET", "https://admin.areej.shop")
	assert.Equal(t, "https://admin.areej.shop", c.Response.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	config.Cfg.CORSAllowedOrigins = ""

	c := runCORS(t, "OPTIONS", "http://localhost:3000")
	assert.Equal(t, 204, c.Response.StatusCode())
	assert.Equal(t, "86400", c.Response.Header.Get("Access-Control-Max-Age"))
}
