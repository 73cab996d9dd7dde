package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingRuleHandler handles HTTP requests related to partner pricing rules.
type pricingRuleHandler struct {
	ruleService portssvc.PricingRuleSvcFacade
}

func newPricingRuleHandler(rs portssvc.PricingRuleSvcFacade) *pricingRuleHandler {
	return &pricingRuleHandler{ruleService: rs}
}

// RegisterPricingRuleRoutes registers pricing rule routes. Creation and
// listing are nested under the owning partner; the rest address rules directly.
func RegisterPricingRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.PricingRuleSvcFacade) {
	h := newPricingRuleHandler(ruleService)

	rg.POST("/partners/:id/pricing-rules", h.createRule)
	rg.GET("/partners/:id/pricing-rules", h.listRules)

	rules := rg.Group("/pricing-rules")
	{
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

// createRule godoc
// @Summary Create a pricing rule
// @Description Attaches a quantity/category scoped pricing rule to a partner.
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param rule body dto.CreatePricingRuleRequest true "Rule details"
// @Success 201 {object} dto.PricingRuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id}/pricing-rules [post]
func (h *pricingRuleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	var req dto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newRule, err := h.ruleService.CreateRule(c.Request.Context(), partnerID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create pricing rule in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create pricing rule"})
		return
	}

	logger.Info("Pricing rule created", slog.String("rule_id", newRule.RuleID), slog.String("partner_id", partnerID))
	c.JSON(http.StatusCreated, dto.ToPricingRuleResponse(newRule))
}

// listRules godoc
// @Summary List a partner's pricing rules
// @Tags pricing-rules
// @Produce json
// @Param id path string true "Partner ID"
// @Param activeOnly query bool false "Only active rules" default(false)
// @Success 200 {array} dto.PricingRuleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /partners/{id}/pricing-rules [get]
func (h *pricingRuleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	rules, err := h.ruleService.ListRulesByPartner(c.Request.Context(), partnerID, activeOnly)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Partner not found"})
			return
		}
		logger.Error("Failed to list pricing rules from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list pricing rules"})
		return
	}

	responses := make([]dto.PricingRuleResponse, len(rules))
	for i := range rules {
		responses[i] = dto.ToPricingRuleResponse(&rules[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getRule godoc
// @Summary Get a pricing rule by ID
// @Tags pricing-rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} dto.PricingRuleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-rules/{id} [get]
func (h *pricingRuleHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("id")

	rule, err := h.ruleService.GetRuleByID(c.Request.Context(), ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pricing rule not found"})
			return
		}
		logger.Error("Failed to get pricing rule from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve pricing rule"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a pricing rule
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param rule body dto.UpdatePricingRuleRequest true "Fields to update"
// @Success 200 {object} dto.PricingRuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-rules/{id} [put]
func (h *pricingRuleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("id")

	var req dto.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedRule, err := h.ruleService.UpdateRule(c.Request.Context(), ruleID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pricing rule not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update pricing rule in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update pricing rule"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingRuleResponse(updatedRule))
}

// deleteRule godoc
// @Summary Delete a pricing rule
// @Description Disables a rule. Rules are never hard-deleted so historical
// @Description prices stay explainable.
// @Tags pricing-rules
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-rules/{id} [delete]
func (h *pricingRuleHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("id")

	if err := h.ruleService.DeleteRule(c.Request.Context(), ruleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pricing rule not found"})
			return
		}
		logger.Error("Failed to delete pricing rule in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete pricing rule"})
		return
	}

	c.Status(http.StatusNoContent)
}
