package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/session"
	"jibuCashAPI/internal/task"
)

// SessionService is the single owner of per-user session state: balance,
// subscription tier and the daily completion window. All reads and writes
// of user_sessions/completed_tasks go through here so the invariant
// completedCountToday == |completedTaskIds| holds transactionally.
type SessionService struct {
	db *pgxpool.Pool
}

func NewSessionService(db *pgxpool.Pool) *SessionService {
	return &SessionService{db: db}
}

// CreateSession inserts the initial Basic-tier session inside the caller's
// transaction (used at sign-up).
func (s *SessionService) CreateSession(ctx context.Context, tx pgx.Tx, userID, username string) error {
	insert := `
		INSERT INTO user_sessions (user_id, username, subscription_tier, balance, completed_count_today, last_reset_date)
		VALUES ($1, $2, $3, 0, 0, $4)
	`
	if _, err := tx.Exec(ctx, insert, userID, username, session.TierBasic, session.DateKey(time.Now())); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetState runs the daily rollover check, then returns the current state
// including the day's completed-task keys.
func (s *SessionService) GetState(ctx context.Context, userID string) (*session.State, error) {
	if err := s.RolloverIfNeeded(ctx, userID); err != nil {
		return nil, err
	}

	var st session.State
	query := `
		SELECT user_id, username, subscription_tier, balance, completed_count_today, last_reset_date, updated_at
		FROM user_sessions
		WHERE user_id = $1
	`
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&st.UserID,
		&st.Username,
		&st.SubscriptionTier,
		&st.Balance,
		&st.CompletedCountToday,
		&st.LastResetDate,
		&st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	keys, err := s.completedKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	st.CompletedTaskKeys = keys

	return &st, nil
}

// RolloverIfNeeded resets the daily window exactly once per calendar-date
// change. Safe to run any number of times a day.
func (s *SessionService) RolloverIfNeeded(ctx context.Context, userID string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.rolloverInTx(ctx, tx, userID, time.Now()); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *SessionService) rolloverInTx(ctx context.Context, tx pgx.Tx, userID string, now time.Time) error {
	today := session.DateKey(now)
	reset := `
		UPDATE user_sessions
		SET completed_count_today = 0, last_reset_date = $2, updated_at = now()
		WHERE user_id = $1 AND last_reset_date <> $2
	`
	tag, err := tx.Exec(ctx, reset, userID, today)
	if err != nil {
		return fmt.Errorf("failed to run daily reset: %w", err)
	}
	if tag.RowsAffected() > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM completed_tasks WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("failed to clear completed tasks on reset: %w", err)
		}
	}
	return nil
}

// ClaimReward is the Completed -> Claimed transition. Preconditions are
// re-checked here, at claim time, inside one transaction: the daily cap
// and the per-task single completion. On success balance, completed set
// and counter move together; on rejection nothing changes.
func (s *SessionService) ClaimReward(ctx context.Context, userID string, t *task.Task) (*session.State, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	if err := s.rolloverInTx(ctx, tx, userID, now); err != nil {
		return nil, err
	}

	var count int
	lockQuery := `
		SELECT completed_count_today
		FROM user_sessions
		WHERE user_id = $1
		FOR UPDATE
	`
	if err := tx.QueryRow(ctx, lockQuery, userID).Scan(&count); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}

	if count >= session.DailyTaskCap {
		return nil, ErrDailyCapReached
	}

	// ON CONFLICT DO NOTHING doubles as the stale-Completed guard: a
	// second claim for the same task key affects zero rows.
	insert := `
		INSERT INTO completed_tasks (user_id, task_key, category, task_id, amount, claimed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, task_key) DO NOTHING
	`
	tag, err := tx.Exec(ctx, insert, userID, t.Key(), t.Category, t.ID, t.Amount, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record completed task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrAlreadyClaimed
	}

	update := `
		UPDATE user_sessions
		SET balance = balance + $2, completed_count_today = completed_count_today + 1, updated_at = now()
		WHERE user_id = $1
	`
	if _, err := tx.Exec(ctx, update, userID, t.Amount); err != nil {
		return nil, fmt.Errorf("failed to credit reward: %w", err)
	}

	reward := `
		INSERT INTO transactions (id, user_id, type, amount, reference, created_at)
		VALUES ($1, $2, 'reward', $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, reward, uuid.New(), userID, t.Amount, t.Key(), now); err != nil {
		return nil, fmt.Errorf("failed to record reward transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return s.GetState(ctx, userID)
}

// UpdateTier switches the subscription tier (set by a confirmed payment).
func (s *SessionService) UpdateTier(ctx context.Context, tx pgx.Tx, userID string, tier session.Tier) error {
	update := `
		UPDATE user_sessions
		SET subscription_tier = $2, updated_at = now()
		WHERE user_id = $1
	`
	tag, err := tx.Exec(ctx, update, userID, tier)
	if err != nil {
		return fmt.Errorf("failed to update tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DebitBalance withdraws from the balance inside the caller's transaction.
// The row is locked first so a concurrent claim cannot interleave.
func (s *SessionService) DebitBalance(ctx context.Context, tx pgx.Tx, userID string, amount float64) (float64, error) {
	var balance float64
	lockQuery := `SELECT balance FROM user_sessions WHERE user_id = $1 FOR UPDATE`
	if err := tx.QueryRow(ctx, lockQuery, userID).Scan(&balance); err != nil {
		if err == pgx.ErrNoRows {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to lock session: %w", err)
	}

	if amount > balance {
		return balance, ErrInsufficientBalance
	}

	newBalance := balance - amount
	update := `UPDATE user_sessions SET balance = $2, updated_at = now() WHERE user_id = $1`
	if _, err := tx.Exec(ctx, update, userID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}
	return newBalance, nil
}

func (s *SessionService) completedKeys(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT task_key FROM completed_tasks WHERE user_id = $1 ORDER BY claimed_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
