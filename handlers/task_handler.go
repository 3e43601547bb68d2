package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"jibuCashAPI/internal/task"
	"jibuCashAPI/middleware"
	"jibuCashAPI/services"
)

type TaskHandler struct {
	lifecycleService *services.LifecycleService
}

func NewTaskHandler(lifecycleService *services.LifecycleService) *TaskHandler {
	return &TaskHandler{
		lifecycleService: lifecycleService,
	}
}

// GetTaskBoard serves the home screen: every category's cards with
// per-user status and time-left for the time-boxed ones.
func (h *TaskHandler) GetTaskBoard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	board, err := h.lifecycleService.TaskBoard(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error loading tasks")
		return
	}

	respondWithJSON(w, http.StatusOK, board)
}

func (h *TaskHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	category := task.Category(vars["category"])
	taskID := vars["taskId"]

	attempt, err := h.lifecycleService.StartTask(ctx, userID, category, taskID)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, attempt)
}

func (h *TaskHandler) BeginQuiz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	attempt, err := h.lifecycleService.BeginQuiz(ctx, userID, mux.Vars(r)["attemptId"])
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, attempt)
}

func (h *TaskHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.lifecycleService.SubmitAnswer(ctx, userID, mux.Vars(r)["attemptId"], body.Answer)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *TaskHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	state, err := h.lifecycleService.ClaimReward(ctx, userID, mux.Vars(r)["attemptId"])
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}

func respondLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrAttemptNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTierLocked):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrAlreadyClaimed), errors.Is(err, services.ErrDailyCapReached):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrTaskExpired), errors.Is(err, services.ErrQuizNotCompleted), errors.Is(err, services.ErrNoAnswerSelected):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
