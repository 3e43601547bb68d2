package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/payment"
	"jibuCashAPI/utils"
)

// PaymentService confirms subscription upgrades from pasted M-Pesa
// messages: parse the receipt, match the amount to a plan, record the
// payment and switch the tier.
type PaymentService struct {
	db       *pgxpool.Pool
	sessions *SessionService
}

func NewPaymentService(db *pgxpool.Pool, sessions *SessionService) *PaymentService {
	return &PaymentService{db: db, sessions: sessions}
}

func (s *PaymentService) ConfirmPayment(ctx context.Context, userID, message string) (*payment.Payment, error) {
	conf, err := utils.ParseMpesaMessage(message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentNotMatched, err)
	}

	tier, ok := payment.TierForAmount(conf.Amount)
	if !ok {
		return nil, ErrPaymentNotMatched
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p := &payment.Payment{
		ID:          uuid.New().String(),
		UserID:      userID,
		MpesaCode:   conf.Code,
		Amount:      conf.Amount,
		Tier:        tier,
		ConfirmedAt: time.Now(),
	}

	// each receipt code upgrades at most once
	insert := `
		INSERT INTO payments (id, user_id, mpesa_code, amount, tier, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (mpesa_code) DO NOTHING
	`
	tag, err := tx.Exec(ctx, insert, p.ID, p.UserID, p.MpesaCode, p.Amount, p.Tier, p.ConfirmedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrPaymentCodeUsed
	}

	if err := s.sessions.UpdateTier(ctx, tx, userID, tier); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	log.Printf("PaymentService: %s upgraded to %s (receipt %s)", userID, tier, p.MpesaCode)
	return p, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, userID string) ([]payment.Payment, error) {
	query := `
		SELECT id, user_id, mpesa_code, amount, tier, confirmed_at
		FROM payments
		WHERE user_id = $1
		ORDER BY confirmed_at DESC
	`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []payment.Payment{}
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.MpesaCode, &p.Amount, &p.Tier, &p.ConfirmedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
