package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"
	"github.com/meetmate/meetmate_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to the wallet ledger.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: ws,
	}
}

// registerWalletRoutes registers all wallet-related routes.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/balance", h.getBalance)
		wallet.GET("/transactions", h.listTransactions)
		wallet.POST("/add-money", h.addMoney)
		wallet.POST("/expense", h.recordExpense)
	}
}

// getBalance returns the caller's balance summary: stored balance, pending
// redemptions, current-month spend and the configured monthly budget.
func (h *walletHandler) getBalance(c *gin.Context) {
	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), params.UserID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch wallet balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// listTransactions returns the caller's most recent ledger entries, newest
// first, bounded by the limit query parameter (default 10).
func (h *walletHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	transactions, err := h.walletService.ListTransactions(c.Request.Context(), params.UserID, params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// addMoney appends a completed deposit to the ledger and increments the
// caller's balance atomically.
func (h *walletHandler) addMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add money request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and amount are required"})
		return
	}

	result, err := h.walletService.Deposit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add money to wallet")
		return
	}

	logger.Info("Deposit recorded",
		slog.Int64("user_id", req.UserID),
		slog.Int64("transaction_id", result.Transaction.ID),
	)
	c.JSON(http.StatusOK, result)
}

// recordExpense appends a completed expense to the ledger and decrements the
// caller's balance atomically, rejecting overdrafts.
func (h *walletHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record expense request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID, amount and description are required"})
		return
	}

	result, err := h.walletService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded",
		slog.Int64("user_id", req.UserID),
		slog.Int64("transaction_id", result.Transaction.ID),
	)
	c.JSON(http.StatusOK, result)
}
