package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crosscheck-io/crosscheck/internal/headlines"
	"github.com/crosscheck-io/crosscheck/internal/verify"
)

// ClaimVerifier is the one operation the HTTP layer needs from the engine.
type ClaimVerifier interface {
	Verify(ctx context.Context, text string) verify.VerificationResult
}

// HeadlineFetcher provides the live headlines set.
type HeadlineFetcher interface {
	Fetch(ctx context.Context) []headlines.Headline
}

// VerifyRequest is the claim submission payload.
type VerifyRequest struct {
	Content string `json:"content"`
}

type VerifyHandler struct {
	Verifier ClaimVerifier
}

func (h *VerifyHandler) Register(g *echo.Group) {
	g.POST("/verify", h.verify)
}

func (h *VerifyHandler) verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// Empty content is allowed: the engine degrades to UNVERIFIED.
	result := h.Verifier.Verify(c.Request().Context(), req.Content)
	return c.JSON(http.StatusOK, result)
}

type HeadlinesHandler struct {
	Service HeadlineFetcher
}

func (h *HeadlinesHandler) Register(g *echo.Group) {
	g.GET("/headlines", h.headlines)
}

func (h *HeadlinesHandler) headlines(c echo.Context) error {
	items := h.Service.Fetch(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]interface{}{"headlines": items})
}
