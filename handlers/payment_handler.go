package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"jibuCashAPI/internal/payment"
	"jibuCashAPI/middleware"
	"jibuCashAPI/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// GetPlans lists the subscription cards the discover screen shows.
func (h *PaymentHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, []map[string]any{
		{"tier": "Basic", "priceKSH": 0, "description": "Enjoy basic features with limited access."},
		{"tier": "Standard", "priceKSH": 350, "description": "Unlock more features and higher rewards."},
		{"tier": "Premium", "priceKSH": 700, "description": "Get premium features and even higher rewards."},
		{"tier": "Elite", "priceKSH": 1000, "description": "Access all features with the highest rewards."},
	})
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req payment.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors(err)})
		return
	}

	p, err := h.paymentService.ConfirmPayment(ctx, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotMatched):
			respondWithError(w, http.StatusBadRequest, "Could not match this confirmation to a plan")
		case errors.Is(err, services.ErrPaymentCodeUsed):
			respondWithError(w, http.StatusConflict, "This M-Pesa confirmation was already used")
		default:
			respondWithError(w, http.StatusInternalServerError, "Payment confirmation failed")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	payments, err := h.paymentService.ListPayments(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error loading payments")
		return
	}

	respondWithJSON(w, http.StatusOK, payments)
}
