package services

import (
	"context"
	"testing"

	"jibuCashAPI/internal/task"
	"jibuCashAPI/internal/wallet"
)

func TestWithdrawBelowMinimumIsRejected(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	wallets := NewWalletService(db, sessions)
	u := signUpTestUser(t, users)

	req := &wallet.WithdrawRequest{Amount: wallet.MinWithdrawalKSH - 1, MpesaNumber: "0712345678"}
	if _, err := wallets.Withdraw(context.Background(), u.ID, req); err != ErrBelowMinimum {
		t.Fatalf("err = %v, want ErrBelowMinimum", err)
	}
}

func TestWithdrawRejectsOverdraft(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	wallets := NewWalletService(db, sessions)
	u := signUpTestUser(t, users)

	// balance is zero; any valid amount overdraws
	req := &wallet.WithdrawRequest{Amount: wallet.MinWithdrawalKSH, MpesaNumber: "0712345678"}
	if _, err := wallets.Withdraw(context.Background(), u.ID, req); err != ErrInsufficientBalance {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	wal, err := wallets.GetWallet(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if wal.Balance != 0 {
		t.Errorf("balance = %v, want 0", wal.Balance)
	}
}

func TestWithdrawDebitsAndRecordsTransaction(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	users := NewUserService(db, sessions)
	wallets := NewWalletService(db, sessions)
	u := signUpTestUser(t, users)
	ctx := context.Background()

	// fund the balance through claims, the only credit path
	for i, amount := range []float64{400, 600} {
		tk := task.Task{ID: string(rune('1' + i)), Category: task.CategoryMoneySavings, Amount: amount}
		if _, err := sessions.ClaimReward(ctx, u.ID, &tk); err != nil {
			t.Fatalf("funding claim failed: %v", err)
		}
	}

	req := &wallet.WithdrawRequest{Amount: 900, MpesaNumber: "0712345678"}
	txn, err := wallets.Withdraw(ctx, u.ID, req)
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if txn.Type != "withdrawal" || txn.Amount != 900 {
		t.Errorf("transaction = %+v", txn)
	}

	wal, err := wallets.GetWallet(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if wal.Balance != 100 {
		t.Errorf("balance = %v, want 100", wal.Balance)
	}

	txns, err := wallets.ListTransactions(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	// two reward credits plus the withdrawal
	if len(txns) != 3 {
		t.Errorf("transactions = %d, want 3", len(txns))
	}
	var sawWithdrawal bool
	for _, tx := range txns {
		if tx.Type == "withdrawal" && tx.MpesaNumber == "0712345678" {
			sawWithdrawal = true
		}
	}
	if !sawWithdrawal {
		t.Error("withdrawal missing from transaction history")
	}
}
