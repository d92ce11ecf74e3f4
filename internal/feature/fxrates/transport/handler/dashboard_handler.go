// Package handler serves the FX dashboard over HTTP.
package handler

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/transport/http/dto"
	"fx_dashboard/internal/feature/fxrates/usecase"
	"fx_dashboard/internal/platform/chart"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardUsecase is the part of usecase.Dashboard the handler drives.
type DashboardUsecase interface {
	FetchHistory(ctx context.Context, sel entity.Selection) error
	FetchPrediction(ctx context.Context, sel entity.Selection) error
	View() usecase.View
}

// ChartRenderer draws the chart of a view.
type ChartRenderer interface {
	Render(w io.Writer, v usecase.View) error
}

// DashboardHandler handles the dashboard page and its actions.
type DashboardHandler struct {
	uc       DashboardUsecase
	renderer ChartRenderer
	logger   *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(uc DashboardUsecase, renderer ChartRenderer, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{uc: uc, renderer: renderer, logger: logger}
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"rate": formatRate,
	}).ParseFS(templateFS, "templates/*.html"))
}

// Page renders the dashboard.
//
// GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "dashboard.html", newPage(h.uc.View()))
}

// State returns the view model as JSON.
//
// GET /dashboard/state
func (h *DashboardHandler) State(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.NewViewResponse(h.uc.View()))
}

// History applies the posted selection and loads its history.
//
// POST /dashboard/history
func (h *DashboardHandler) History(c *gin.Context) {
	h.act(c, h.uc.FetchHistory)
}

// Predict applies the posted selection and loads the forecast.
//
// POST /dashboard/predict
func (h *DashboardHandler) Predict(c *gin.Context) {
	h.act(c, h.uc.FetchPrediction)
}

// Chart returns the chart as PNG, or 204 when there is nothing to draw.
//
// GET /dashboard/chart.png
func (h *DashboardHandler) Chart(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	v := h.uc.View()
	if v.Phase != usecase.PhaseChart {
		c.Status(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, v); err != nil {
		if errors.Is(err, chart.ErrNothingToPlot) {
			c.Status(http.StatusNoContent)
			return
		}
		h.logger.Error("failed to render chart", "pair", v.Pair, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *DashboardHandler) act(c *gin.Context, fetch func(context.Context, entity.Selection) error) {
	// Browsers posting the form get the page again; the state carries the outcome.
	html := c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML

	var req dto.SelectionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid selection body", "error", err)
		if html {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid selection: %v", err)})
		return
	}

	err := fetch(c.Request.Context(), req.Selection())
	if html {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var verr *usecase.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.NewViewResponse(h.uc.View()))
	case errors.Is(err, usecase.ErrBusy):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &verr), errors.Is(err, usecase.ErrNoHistory):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, dto.NewViewResponse(h.uc.View()))
	}
}
