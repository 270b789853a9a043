// Package server exposes the verification engine over HTTP.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crosscheck-io/crosscheck/config"
	"github.com/crosscheck-io/crosscheck/internal/headlines"
	"github.com/crosscheck-io/crosscheck/internal/verify"
)

// New assembles the echo instance with all routes and middleware wired.
func New(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	verifier := verify.NewVerifier(cfg.Providers, log.New(log.Writer(), "[VERIFY] ", log.LstdFlags))
	headlineSvc := headlines.NewService(cfg.Headlines, cfg.Providers.GNews, log.New(log.Writer(), "[HEADLINES] ", log.LstdFlags))

	api := e.Group("/api")
	vh := &VerifyHandler{Verifier: verifier}
	vh.Register(api)
	hh := &HeadlinesHandler{Service: headlineSvc}
	hh.Register(api)

	return e
}

// Run assembles the server and blocks serving on the configured address.
func Run(cfg *config.Config) error {
	addr := cfg.Server.Address
	if addr == "" {
		addr = ":8080"
	}
	if addr[0] != ':' && !hasHostPort(addr) {
		addr = ":" + addr
	}
	return New(cfg).Start(addr)
}

func hasHostPort(addr string) bool {
	for _, r := range addr {
		if r == ':' {
			return true
		}
	}
	return false
}
