package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/gin-gonic/gin"
)

type historyHandler struct {
	ledgerService portssvc.LedgerSvc
}

// RegisterHistoryRoutes registers the ledger history endpoints.
func RegisterHistoryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &historyHandler{ledgerService: ledgerService}
	tx := rg.Group("/transactions")
	{
		tx.GET("/all", h.listAll)
		tx.GET("/:cardNumber", h.listByCard)
	}
}

// listByCard godoc
// @Summary List a card's transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   cardNumber path string true "Card number"
// @Param   limit query int false "Maximum number of entries"
// @Success 200 {array} dto.TransactionHistoryResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Security BearerAuth
// @Router /transactions/{cardNumber} [get]
func (h *historyHandler) listByCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	entries, err := h.ledgerService.GetHistory(c.Request.Context(), c.Param("cardNumber"), limit)
	if err != nil {
		respondServiceError(c, logger, err, "No transactions found")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionHistoryResponses(entries))
}

// listAll godoc
// @Summary List all transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Maximum number of entries"
// @Success 200 {array} dto.TransactionHistoryResponse
// @Security BearerAuth
// @Router /transactions/all [get]
func (h *historyHandler) listAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	entries, err := h.ledgerService.GetAllHistory(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, logger, err, "No transactions found")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionHistoryResponses(entries))
}
