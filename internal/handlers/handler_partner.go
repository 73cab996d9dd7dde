package handlers

import (
	"errors"
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

// partnerHandler handles HTTP requests related to business partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps}
}

// RegisterPartnerRoutes registers routes related to partners.
func RegisterPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:id", h.getPartner)
		partners.PUT("/:id", h.updatePartner)
		partners.PATCH("/:id/debt", h.updateDebt)
		partners.DELETE("/:id", h.deletePartner)
	}
}

func partnerResponse(p *domain.Partner) dto.PartnerResponse {
	return dto.ToPartnerResponse(p, persiannum.FormatToman(p.CurrentDebt))
}

// createPartner godoc
// @Summary Create a new partner
// @Description Registers a business partner with its pricing configuration.
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newPartner, err := h.partnerService.CreatePartner(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create partner in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create partner"})
		return
	}

	logger.Info("Partner created", slog.String("partner_id", newPartner.PartnerID))
	c.JSON(http.StatusCreated, partnerResponse(newPartner))
}

// getPartner godoc
// @Summary Get a partner by ID
// @Tags partners
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		logger.Error("Failed to get partner from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve partner"})
		return
	}

	c.JSON(http.StatusOK, partnerResponse(partner))
}

// listPartners godoc
// @Summary List partners
// @Tags partners
// @Produce json
// @Param type query string false "Filter by partner type"
// @Param activeOnly query bool false "Only active partners" default(true)
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.PartnerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPartnersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	partners, err := h.partnerService.ListPartners(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list partners"})
		return
	}

	responses := make([]dto.PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = partnerResponse(&partners[i])
	}
	c.JSON(http.StatusOK, responses)
}

// updatePartner godoc
// @Summary Update a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param partner body dto.UpdatePartnerRequest true "Fields to update"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [put]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedPartner, err := h.partnerService.UpdatePartner(c.Request.Context(), partnerID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update partner in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update partner"})
		return
	}

	c.JSON(http.StatusOK, partnerResponse(updatedPartner))
}

// updateDebt godoc
// @Summary Adjust a partner's debt
// @Description Adds to, subtracts from, or sets the partner's running debt.
// @Description Reductions are recorded as settlements automatically.
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param debt body dto.UpdateDebtRequest true "Debt adjustment"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Credit limit exceeded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id}/debt [patch]
func (h *partnerHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("partner_id", partnerID), slog.String("operation", req.Operation))

	updatedPartner, err := h.partnerService.UpdateDebt(c.Request.Context(), partnerID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		if errors.Is(err, apperrors.ErrCreditLimitExceeded) {
			logger.Warn("Debt change rejected, credit limit exceeded")
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Credit limit exceeded"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update partner debt in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update debt"})
		return
	}

	logger.Info("Partner debt updated")
	c.JSON(http.StatusOK, partnerResponse(updatedPartner))
}

// deletePartner godoc
// @Summary Deactivate a partner
// @Tags partners
// @Param id path string true "Partner ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.partnerService.DeactivatePartner(c.Request.Context(), partnerID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		logger.Error("Failed to deactivate partner in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate partner"})
		return
	}

	c.Status(http.StatusNoContent)
}
