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

// basalamStateCookie holds the OAuth CSRF state between the URL request and
// the callback. Ten minutes is plenty for the consent screen round trip.
const (
	basalamStateCookie = "basalam_oauth_state"
	basalamStateMaxAge = 600
)

// basalamHandler runs the OAuth handshake that connects the operator's
// Basalam vendor account to the panel.
type basalamHandler struct {
	basalamService portssvc.BasalamOAuthSvcFacade
}

func newBasalamHandler(bs portssvc.BasalamOAuthSvcFacade) *basalamHandler {
	return &basalamHandler{basalamService: bs}
}

// RegisterBasalamRoutes registers the Basalam OAuth routes. They sit behind
// the auth middleware: the connection always belongs to the logged-in user.
func RegisterBasalamRoutes(rg *gin.RouterGroup, basalamService portssvc.BasalamOAuthSvcFacade) {
	h := newBasalamHandler(basalamService)

	basalam := rg.Group("/platforms/basalam")
	{
		basalam.GET("/auth-url", h.getAuthURL)
		basalam.POST("/callback", h.callback)
		basalam.GET("/connection", h.getConnection)
	}
}

// getAuthURL godoc
// @Summary Get Basalam consent URL
// @Description Returns the Basalam OAuth consent page URL for the panel to redirect to.
// @Tags basalam
// @Produce json
// @Success 200 {object} dto.BasalamAuthURLResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /platforms/basalam/auth-url [get]
func (h *basalamHandler) getAuthURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.basalamService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Basalam connection"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(basalamStateCookie, state, basalamStateMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, dto.BasalamAuthURLResponse{
		URL:   h.basalamService.AuthCodeURL(c.Request.Context(), state),
		State: state,
	})
}

// callback godoc
// @Summary Complete Basalam OAuth flow
// @Description Exchanges the authorization code for tokens and stores the connection.
// @Tags basalam
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state from the auth-url step"
// @Success 200 {object} dto.BasalamCallbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /platforms/basalam/callback [post]
func (h *basalamHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing code or state"})
		return
	}

	expectedState, err := c.Cookie(basalamStateCookie)
	if err != nil || expectedState != state {
		logger.Warn("OAuth state mismatch on Basalam callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(basalamStateCookie, "", -1, "/", "", false, true)

	token, err := h.basalamService.ExchangeCode(c.Request.Context(), userID, code)
	if err != nil {
		logger.Error("Failed to exchange Basalam authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Basalam connection"})
		return
	}

	resp := dto.BasalamCallbackResponse{Platform: "basalam", Connected: true}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		resp.TokenExpiry = &expiry
	}
	c.JSON(http.StatusOK, resp)
}

// getConnection godoc
// @Summary Get Basalam connection status
// @Description Reports whether the logged-in user has a Basalam connection.
// @Tags basalam
// @Produce json
// @Success 200 {object} dto.BasalamCallbackResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /platforms/basalam/connection [get]
func (h *basalamHandler) getConnection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conn, err := h.basalamService.Connection(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.BasalamCallbackResponse{Platform: "basalam", Connected: false})
			return
		}
		logger.Error("Failed to load Basalam connection", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load Basalam connection"})
		return
	}

	c.JSON(http.StatusOK, dto.BasalamCallbackResponse{
		Platform:    conn.Platform,
		Connected:   true,
		TokenExpiry: conn.TokenExpiry,
	})
}
