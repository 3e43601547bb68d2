package notification

import (
	"context"
	"time"
)

type DeviceToken struct {
	UserID       string    `json:"userId"`
	Token        string    `json:"token"`
	Platform     string    `json:"platform"` // "android" | "ios"
	RegisteredAt time.Time `json:"registeredAt"`
}

type RegisterDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=android ios"`
}

// PushProvider is implemented by FCMService and injected into the
// notification service so the API still runs when push is unavailable.
type PushProvider interface {
	SendPush(ctx context.Context, tokens []DeviceToken, title, body string, data map[string]any) error
}
