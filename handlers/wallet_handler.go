package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"jibuCashAPI/internal/wallet"
	"jibuCashAPI/middleware"
	"jibuCashAPI/services"
)

type WalletHandler struct {
	walletService *services.WalletService
}

func NewWalletHandler(walletService *services.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	wal, err := h.walletService.GetWallet(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Wallet not found")
		return
	}

	respondWithJSON(w, http.StatusOK, wal)
}

func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req wallet.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors(err)})
		return
	}

	txn, err := h.walletService.Withdraw(ctx, userID, &req)
	if err != nil {
		switch err {
		case services.ErrBelowMinimum:
			respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"amount": "Minimum withdrawal is KSH 900"}})
		case services.ErrInsufficientBalance:
			respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"amount": "Insufficient balance"}})
		default:
			respondWithError(w, http.StatusInternalServerError, "Withdrawal failed, please try again")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, txn)
}

func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	txns, err := h.walletService.ListTransactions(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error loading transactions")
		return
	}

	respondWithJSON(w, http.StatusOK, txns)
}
