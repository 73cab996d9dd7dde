package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler exposes the on-demand price preview.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// RegisterPricingRoutes registers the price preview route.
func RegisterPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/preview", h.previewPrice)
	}
}

// previewPrice godoc
// @Summary Preview a selling price
// @Description Runs a base price through the partner's formula and applicable
// @Description rules without persisting anything. The panel calls this while
// @Description the operator types a price.
// @Tags pricing
// @Accept json
// @Produce json
// @Param preview body dto.PricePreviewRequest true "Preview parameters"
// @Success 200 {object} dto.PricePreviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing/preview [post]
func (h *pricingHandler) previewPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PricePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	preview, err := h.pricingService.PreviewPrice(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to preview price", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to preview price"})
		return
	}

	c.JSON(http.StatusOK, preview)
}
