package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/middleware"
	"github.com/bazaryar/bazaryar_backend/internal/utils/persiannum"
	"github.com/gin-gonic/gin"
)

// skuHandler handles HTTP requests related to SKUs.
type skuHandler struct {
	skuService portssvc.SKUSvcFacade
}

func newSKUHandler(ss portssvc.SKUSvcFacade) *skuHandler {
	return &skuHandler{skuService: ss}
}

// RegisterSKURoutes registers routes related to SKUs.
func RegisterSKURoutes(rg *gin.RouterGroup, skuService portssvc.SKUSvcFacade) {
	h := newSKUHandler(skuService)

	skus := rg.Group("/skus")
	{
		skus.POST("", h.createSKU)
		skus.GET("", h.listSKUs)
		skus.GET("/:id", h.getSKU)
		skus.PUT("/:id", h.updateSKU)
		skus.DELETE("/:id", h.deleteSKU)
		skus.POST("/recalculate", h.recalculatePrices)
	}
}

// skuResponse renders a SKU with the Persian price helper strings the panel
// shows next to the price fields.
func skuResponse(s *domain.SKU) dto.SKUResponse {
	var words, display string
	if s.FinalPrice != nil {
		words = persiannum.ToWords(*s.FinalPrice)
		display = persiannum.FormatToman(*s.FinalPrice)
	}
	return dto.ToSKUResponse(s, words, display)
}

// createSKU godoc
// @Summary Create a new SKU
// @Description Registers a SKU. The final price is computed server-side from
// @Description the owning partner's pricing formula.
// @Tags skus
// @Accept json
// @Produce json
// @Param sku body dto.CreateSKURequest true "SKU details"
// @Success 201 {object} dto.SKUResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "SKU code already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus [post]
func (h *skuHandler) createSKU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newSKU, err := h.skuService.CreateSKU(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "SKU code already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create SKU in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create SKU"})
		return
	}

	logger.Info("SKU created", slog.String("sku_id", newSKU.SKUID), slog.String("sku_code", newSKU.SKUCode))
	c.JSON(http.StatusCreated, skuResponse(newSKU))
}

// getSKU godoc
// @Summary Get a SKU by ID
// @Tags skus
// @Produce json
// @Param id path string true "SKU ID"
// @Success 200 {object} dto.SKUResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus/{id} [get]
func (h *skuHandler) getSKU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	skuID := c.Param("id")

	sku, err := h.skuService.GetSKUByID(c.Request.Context(), skuID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "SKU not found"})
			return
		}
		logger.Error("Failed to get SKU from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve SKU"})
		return
	}

	c.JSON(http.StatusOK, skuResponse(sku))
}

// listSKUs godoc
// @Summary List SKUs
// @Tags skus
// @Produce json
// @Param productID query string false "Filter by product"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.SKUResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus [get]
func (h *skuHandler) listSKUs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSKUsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	skus, err := h.skuService.ListSKUs(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list SKUs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list SKUs"})
		return
	}

	responses := make([]dto.SKUResponse, len(skus))
	for i := range skus {
		responses[i] = skuResponse(&skus[i])
	}
	c.JSON(http.StatusOK, responses)
}

// updateSKU godoc
// @Summary Update a SKU
// @Description Updates a SKU. Changing the base price re-derives the final price.
// @Tags skus
// @Accept json
// @Produce json
// @Param id path string true "SKU ID"
// @Param sku body dto.UpdateSKURequest true "Fields to update"
// @Success 200 {object} dto.SKUResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus/{id} [put]
func (h *skuHandler) updateSKU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	skuID := c.Param("id")

	var req dto.UpdateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedSKU, err := h.skuService.UpdateSKU(c.Request.Context(), skuID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "SKU not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update SKU in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update SKU"})
		return
	}

	c.JSON(http.StatusOK, skuResponse(updatedSKU))
}

// deleteSKU godoc
// @Summary Deactivate a SKU
// @Tags skus
// @Param id path string true "SKU ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus/{id} [delete]
func (h *skuHandler) deleteSKU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	skuID := c.Param("id")

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.skuService.DeactivateSKU(c.Request.Context(), skuID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "SKU not found"})
			return
		}
		logger.Error("Failed to deactivate SKU in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate SKU"})
		return
	}

	c.Status(http.StatusNoContent)
}

// recalculatePrices godoc
// @Summary Recalculate SKU final prices
// @Description Re-derives final prices for all priceable SKUs, optionally
// @Description scoped to one product. Used after a partner's formula changes.
// @Tags skus
// @Accept json
// @Produce json
// @Param scope body dto.RecalculatePricesRequest false "Scope of the run"
// @Success 200 {object} dto.RecalculatePricesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skus/recalculate [post]
func (h *skuHandler) recalculatePrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// An empty body means "recalculate everything".
	var req dto.RecalculatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.skuService.RecalculateFinalPrices(c.Request.Context(), req, updaterUserID)
	if err != nil {
		logger.Error("Failed to recalculate SKU prices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to recalculate prices"})
		return
	}

	logger.Info("SKU prices recalculated", slog.Int("updated_count", updated))
	c.JSON(http.StatusOK, dto.RecalculatePricesResponse{UpdatedCount: updated})
}
