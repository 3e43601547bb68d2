package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/wallet"
	"jibuCashAPI/middleware"
)

type WalletService struct {
	db       *pgxpool.Pool
	sessions *SessionService
}

func NewWalletService(db *pgxpool.Pool, sessions *SessionService) *WalletService {
	return &WalletService{db: db, sessions: sessions}
}

func (s *WalletService) GetWallet(ctx context.Context, userID string) (*wallet.Wallet, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &wallet.Wallet{
		UserID:   state.UserID,
		Username: state.Username,
		Balance:  state.Balance,
	}, nil
}

// Withdraw debits the balance and records the payout in one transaction.
// Validation failures leave the balance untouched.
func (s *WalletService) Withdraw(ctx context.Context, userID string, req *wallet.WithdrawRequest) (*wallet.Transaction, error) {
	if req.Amount < wallet.MinWithdrawalKSH {
		middleware.WithdrawalsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrBelowMinimum
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := s.sessions.DebitBalance(ctx, tx, userID, req.Amount); err != nil {
		if err == ErrInsufficientBalance {
			middleware.WithdrawalsTotal.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	txn := &wallet.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        "withdrawal",
		Amount:      req.Amount,
		MpesaNumber: req.MpesaNumber,
		CreatedAt:   time.Now(),
	}

	insert := `
		INSERT INTO transactions (id, user_id, type, amount, mpesa_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, insert, txn.ID, txn.UserID, txn.Type, txn.Amount, txn.MpesaNumber, txn.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	middleware.WithdrawalsTotal.WithLabelValues("completed").Inc()
	log.Printf("WalletService: %s withdrew KSH %.2f to %s", userID, txn.Amount, txn.MpesaNumber)
	return txn, nil
}

func (s *WalletService) ListTransactions(ctx context.Context, userID string) ([]wallet.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, COALESCE(mpesa_number, ''), COALESCE(reference, ''), created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 50
	`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := []wallet.Transaction{}
	for rows.Next() {
		var t wallet.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.MpesaNumber, &t.Reference, &t.CreatedAt); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
