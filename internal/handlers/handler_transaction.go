package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/corebank/internal/core/domain"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests that run the transaction engine.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
	posthogClient      *utils.PosthogClientWrapper
}

func newTransactionHandler(ts portssvc.TransactionSvc, posthogClient *utils.PosthogClientWrapper) *transactionHandler {
	return &transactionHandler{transactionService: ts, posthogClient: posthogClient}
}

// RegisterTransactionRoutes registers the engine entry points.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newTransactionHandler(ts, posthogClient)
	rg.POST("/process", h.processTransaction)
	rg.POST("/transaction", h.gatewayTransaction)
}

// processTransaction godoc
// @Summary Process a card transaction
// @Description Authenticates card and PIN, then applies a withdraw or topup. Declines are returned with success=false and HTTP 200.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.ProcessTransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 503 {object} dto.TransactionResponse "Core banking system unavailable"
// @Security BearerAuth
// @Router /process [post]
func (h *transactionHandler) processTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.run(c, logger, req.ToDomain())
}

// gatewayTransaction godoc
// @Summary Submit a transaction through the gateway
// @Description Validates card range (16 digits starting with 4), amount and type before calling the engine.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.GatewayTransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 503 {object} dto.TransactionResponse "Core banking system unavailable"
// @Security BearerAuth
// @Router /transaction [post]
func (h *transactionHandler) gatewayTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GatewayTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Gateway rejected transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.run(c, logger, req.ToDomain())
}

func (h *transactionHandler) run(c *gin.Context, logger *slog.Logger, req domain.TransactionRequest) {
	masked := cardcrypto.MaskTail(req.AccountID)
	logger.Info("Received transaction", slog.String("card", masked), slog.String("type", req.Kind))

	result, err := h.transactionService.Process(c.Request.Context(), req)
	if err != nil {
		logger.Error("Transaction failed with core fault", slog.String("card", masked), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.TransactionResponse{Success: false, Message: MsgCoreUnavailable})
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "transaction_processed", map[string]any{
		"card":    masked,
		"kind":    string(domain.ParseTransactionKind(req.Kind)),
		"success": result.Success,
		"reason":  result.Message,
	})
	c.JSON(http.StatusOK, dto.ToTransactionResponse(result))
}
