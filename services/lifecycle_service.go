package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"jibuCashAPI/internal/session"
	"jibuCashAPI/internal/task"
	"jibuCashAPI/middleware"
)

// LifecycleService drives a task from available to claimed: start checks
// (tier lock, already-claimed, expiry), the quiz attempt, and the final
// claim against session state.
type LifecycleService struct {
	catalog  *CatalogService
	sessions *SessionService
	attempts *AttemptManager
	notifs   *NotificationService
}

func NewLifecycleService(catalog *CatalogService, sessions *SessionService, attempts *AttemptManager, notifs *NotificationService) *LifecycleService {
	return &LifecycleService{
		catalog:  catalog,
		sessions: sessions,
		attempts: attempts,
		notifs:   notifs,
	}
}

// TaskBoard returns every category's cards with per-user status, the way
// the home screen renders them.
func (s *LifecycleService) TaskBoard(ctx context.Context, userID string) (map[task.Category][]task.Card, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	board := make(map[task.Category][]task.Card)
	for _, category := range task.AllCategories {
		tasks := s.catalog.FetchTasks(ctx, category)
		cards := make([]task.Card, 0, len(tasks))
		for _, t := range tasks {
			cards = append(cards, buildCard(t, state, now))
		}
		board[category] = cards
	}
	return board, nil
}

func buildCard(t task.Task, state *session.State, now time.Time) task.Card {
	card := task.Card{Task: t, Status: task.StatusAvailable}

	if t.ExpiresAt != nil {
		left := t.TimeLeft(now)
		card.TimeLeftSecs = &left
	}

	switch {
	case state.HasCompleted(t.Key()):
		card.Status = task.StatusAlreadyClaimed
	case t.Expired(now):
		// expired cards stay listed but cannot be started
		card.Status = task.StatusExpired
	case t.Category != task.CategoryInitial && state.SubscriptionTier == session.TierBasic:
		card.Status = task.StatusLocked
	}
	return card
}

// StartTask is the Available -> Started transition. Locked and
// AlreadyClaimedToday are decided here, before any attempt exists.
func (s *LifecycleService) StartTask(ctx context.Context, userID string, category task.Category, taskID string) (*AttemptView, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrTaskNotFound, category)
	}

	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, err := s.catalog.GetTask(ctx, category, taskID)
	if err != nil {
		return nil, err
	}

	if state.HasCompleted(t.Key()) {
		return nil, ErrAlreadyClaimed
	}
	if t.Category != task.CategoryInitial && state.SubscriptionTier == session.TierBasic {
		return nil, ErrTierLocked
	}
	if t.Expired(time.Now()) {
		return nil, ErrTaskExpired
	}

	// an empty question set still starts; the quiz step becomes an
	// explicit "no questions" no-op
	questions := s.catalog.LoadQuestions(ctx, t.Category, t.Title)
	return s.attempts.Create(userID, *t, questions), nil
}

// BeginQuiz is the Started -> InQuiz transition.
func (s *LifecycleService) BeginQuiz(ctx context.Context, userID, attemptID string) (*AttemptView, error) {
	return s.attempts.Begin(attemptID, userID)
}

// SubmitAnswer evaluates one selection; see AttemptManager.Answer.
func (s *LifecycleService) SubmitAnswer(ctx context.Context, userID, attemptID, answer string) (*AnswerResult, error) {
	return s.attempts.Answer(attemptID, userID, answer)
}

// ClaimReward is Completed -> Claimed. The daily cap and per-task
// single-completion are re-checked atomically at claim time, so a stale
// Completed attempt cannot double-pay.
func (s *LifecycleService) ClaimReward(ctx context.Context, userID, attemptID string) (*session.State, error) {
	attempt, err := s.attempts.Snapshot(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.State != AttemptCompleted {
		return nil, ErrQuizNotCompleted
	}

	state, err := s.sessions.ClaimReward(ctx, userID, &attempt.Task)
	if err != nil {
		if err == ErrDailyCapReached || err == ErrAlreadyClaimed {
			// rejected claim: drop the stale attempt, keep session
			// state untouched
			s.attempts.Discard(attemptID)
			middleware.RewardsClaimed.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	s.attempts.MarkClaimed(attemptID)
	middleware.RewardsClaimed.WithLabelValues("claimed").Inc()

	if s.notifs != nil {
		go func(amount float64) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.notifs.NotifyRewardClaimed(ctx, userID, amount); err != nil {
				log.Printf("LifecycleService: reward push failed for %s: %v", userID, err)
			}
		}(attempt.Task.Amount)
	}

	return state, nil
}
