package services

import (
	"context"
	"testing"

	"jibuCashAPI/internal/session"
	"jibuCashAPI/internal/task"
)

func TestClaimRewardCreditsBalanceOnce(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	u := signUpTestUser(t, users)
	ctx := context.Background()

	tk := task.Task{ID: "1", Category: task.CategoryInitial, Title: "Monetizing Social Media", Amount: 3}

	st, err := sessions.ClaimReward(ctx, u.ID, &tk)
	if err != nil {
		t.Fatalf("ClaimReward failed: %v", err)
	}
	if st.Balance != 3 {
		t.Errorf("balance = %v, want 3", st.Balance)
	}
	if st.CompletedCountToday != 1 {
		t.Errorf("completedCountToday = %d, want 1", st.CompletedCountToday)
	}
	if !st.HasCompleted(tk.Key()) {
		t.Error("claimed task missing from completed set")
	}
	if len(st.CompletedTaskKeys) != st.CompletedCountToday {
		t.Errorf("completed set size %d != counter %d", len(st.CompletedTaskKeys), st.CompletedCountToday)
	}

	// second claim for the same task must change nothing
	if _, err := sessions.ClaimReward(ctx, u.ID, &tk); err != ErrAlreadyClaimed {
		t.Fatalf("second claim: err = %v, want ErrAlreadyClaimed", err)
	}

	after, err := sessions.GetState(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if after.Balance != 3 || after.CompletedCountToday != 1 {
		t.Errorf("rejected claim mutated state: balance=%v count=%d", after.Balance, after.CompletedCountToday)
	}
}

func TestClaimRewardEnforcesDailyCap(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	u := signUpTestUser(t, users)
	ctx := context.Background()

	for i := 0; i < session.DailyTaskCap; i++ {
		tk := task.Task{ID: string(rune('1' + i)), Category: task.CategoryInitial, Amount: 5}
		if _, err := sessions.ClaimReward(ctx, u.ID, &tk); err != nil {
			t.Fatalf("claim %d failed: %v", i+1, err)
		}
	}

	over := task.Task{ID: "9", Category: task.CategoryHealthWellness, Amount: 80}
	if _, err := sessions.ClaimReward(ctx, u.ID, &over); err != ErrDailyCapReached {
		t.Fatalf("err = %v, want ErrDailyCapReached", err)
	}

	st, err := sessions.GetState(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if st.Balance != 15 {
		t.Errorf("balance = %v, want 15", st.Balance)
	}
	if st.HasCompleted(over.Key()) {
		t.Error("capped task leaked into completed set")
	}
}

func TestDailyRolloverResetsWindowOnce(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	u := signUpTestUser(t, users)
	ctx := context.Background()

	tk := task.Task{ID: "1", Category: task.CategoryInitial, Amount: 3}
	if _, err := sessions.ClaimReward(ctx, u.ID, &tk); err != nil {
		t.Fatalf("ClaimReward failed: %v", err)
	}

	// simulate yesterday's session
	if _, err := db.Exec(ctx, `UPDATE user_sessions SET last_reset_date = '2020-01-01' WHERE user_id = $1`, u.ID); err != nil {
		t.Fatalf("failed to backdate session: %v", err)
	}

	st, err := sessions.GetState(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if st.CompletedCountToday != 0 {
		t.Errorf("completedCountToday = %d, want 0 after rollover", st.CompletedCountToday)
	}
	if len(st.CompletedTaskKeys) != 0 {
		t.Errorf("completed set not cleared: %v", st.CompletedTaskKeys)
	}
	if st.Balance != 3 {
		t.Errorf("rollover touched balance: %v", st.Balance)
	}

	// the same task is claimable again in the new window
	if _, err := sessions.ClaimReward(ctx, u.ID, &tk); err != nil {
		t.Fatalf("re-claim after rollover failed: %v", err)
	}

	// running the rollover again on the same day is a no-op
	if err := sessions.RolloverIfNeeded(ctx, u.ID); err != nil {
		t.Fatalf("RolloverIfNeeded failed: %v", err)
	}
	st, err = sessions.GetState(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if st.CompletedCountToday != 1 {
		t.Errorf("second rollover reset the window: count = %d", st.CompletedCountToday)
	}
}

func TestDebitBalanceRejectsOverdraft(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	u := signUpTestUser(t, users)
	ctx := context.Background()

	tx, err := db.Begin(ctx)
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	defer tx.Rollback(ctx)

	if _, err := sessions.DebitBalance(ctx, tx, u.ID, 100); err != ErrInsufficientBalance {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
}
