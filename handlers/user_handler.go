package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"jibuCashAPI/internal/user"
	"jibuCashAPI/middleware"
	"jibuCashAPI/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors(err)})
		return
	}

	u, err := h.userService.SignUp(ctx, &req)
	if err != nil {
		switch err {
		case services.ErrEmailTaken:
			respondWithJSON(w, http.StatusConflict, map[string]any{"errors": map[string]string{"email": "User already exists"}})
		case services.ErrUnknownReferralCode:
			respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"referralCode": "Unknown referral code"}})
		default:
			respondWithError(w, http.StatusInternalServerError, "An error occurred while creating the account")
		}
		return
	}

	token, err := middleware.IssueToken(u.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	respondWithJSON(w, http.StatusCreated, user.AuthResponse{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
	})
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors(err)})
		return
	}

	u, err := h.userService.SignIn(ctx, &req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "An error occurred while signing in")
		return
	}

	token, err := middleware.IssueToken(u.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	respondWithJSON(w, http.StatusOK, user.AuthResponse{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
	})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) GetReferralInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	info, err := h.userService.GetReferralInfo(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error loading referral data")
		return
	}

	respondWithJSON(w, http.StatusOK, info)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
