package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/notification"
)

type NotificationService struct {
	db   *pgxpool.Pool
	push notification.PushProvider
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	return &NotificationService{db: db}
}

// SetPushProvider injects FCM once it initializes; without a provider
// pushes are skipped silently.
func (s *NotificationService) SetPushProvider(p notification.PushProvider) {
	s.push = p
}

func (s *NotificationService) RegisterDevice(ctx context.Context, userID string, req *notification.RegisterDeviceRequest) error {
	platform := req.Platform
	if platform == "" {
		platform = "android"
	}

	upsert := `
		INSERT INTO device_tokens (user_id, token, platform, registered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE SET user_id = $1, platform = $3, registered_at = $4
	`
	if _, err := s.db.Exec(ctx, upsert, userID, req.Token, platform, time.Now()); err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

// NotifyRewardClaimed pushes the claim confirmation. Failures degrade to
// a log line; the claim itself has already committed.
func (s *NotificationService) NotifyRewardClaimed(ctx context.Context, userID string, amount float64) error {
	if s.push == nil {
		return nil
	}

	tokens, err := s.deviceTokens(ctx, userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	title := "Reward claimed"
	body := fmt.Sprintf("You earned KSH %.0f. Keep it up!", amount)
	return s.push.SendPush(ctx, tokens, title, body, map[string]any{
		"type":   "reward_claimed",
		"amount": amount,
	})
}

func (s *NotificationService) deviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	rows, err := s.db.Query(ctx, `SELECT user_id, token, platform, registered_at FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.Platform, &t.RegisteredAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("NotificationService: %d device token(s) for %s", len(tokens), userID)
	return tokens, nil
}
