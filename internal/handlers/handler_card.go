package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/corebank/internal/apperrors"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/gin-gonic/gin"
)

type cardHandler struct {
	accountService portssvc.AccountSvcFacade
}

// RegisterCardRoutes registers the account lookups.
func RegisterCardRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &cardHandler{accountService: accountService}
	card := rg.Group("/card")
	{
		card.GET("/by-username/:username", h.getCardByUsername)
		card.GET("/:cardNumber", h.getCard)
		card.GET("/:cardNumber/integrity", h.checkCardIntegrity)
	}
}

// getCard godoc
// @Summary Get card info
// @Tags cards
// @Produce  json
// @Param   cardNumber path string true "Card number"
// @Success 200 {object} dto.CardInfoResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 503 {object} map[string]string "Core banking system unavailable"
// @Security BearerAuth
// @Router /card/{cardNumber} [get]
func (h *cardHandler) getCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	view, err := h.accountService.GetAccountView(c.Request.Context(), c.Param("cardNumber"))
	if err != nil {
		respondServiceError(c, logger, err, "Card not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardInfoResponse(*view))
}

// getCardByUsername godoc
// @Summary Get card info by username
// @Tags cards
// @Produce  json
// @Param   username path string true "Username"
// @Success 200 {object} dto.CardInfoResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Security BearerAuth
// @Router /card/by-username/{username} [get]
func (h *cardHandler) getCardByUsername(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	view, err := h.accountService.GetAccountViewByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, logger, err, "Card not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardInfoResponse(*view))
}

// checkCardIntegrity godoc
// @Summary Verify a card's stored ciphertext
// @Description Decrypts the stored card number with the configured keys and compares it with the card. The plaintext is never returned.
// @Tags cards
// @Produce  json
// @Param   cardNumber path string true "Card number"
// @Success 200 {object} dto.CardIntegrityResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 503 {object} map[string]string "Core banking system unavailable"
// @Security BearerAuth
// @Router /card/{cardNumber}/integrity [get]
func (h *cardHandler) checkCardIntegrity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardNumber := c.Param("cardNumber")
	resp := dto.CardIntegrityResponse{MaskedCardNumber: cardcrypto.MaskTail(cardNumber)}

	_, err := h.accountService.RevealAccountID(c.Request.Context(), cardNumber)
	switch {
	case err == nil:
		resp.Verified = true
	case errors.Is(err, apperrors.ErrCrypto) && !errors.Is(err, apperrors.ErrStorage):
		logger.Warn("Card ciphertext failed verification", slog.String("card", resp.MaskedCardNumber))
		resp.Reason = "stored ciphertext does not decrypt to this card"
	default:
		respondServiceError(c, logger, err, "Card not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}
