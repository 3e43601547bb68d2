package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied on startup with IF NOT EXISTS guards so redeploys are
// safe against a live database.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	referral_code TEXT NOT NULL UNIQUE,
	referred_by UUID REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_sessions (
	user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	username TEXT NOT NULL,
	subscription_tier TEXT NOT NULL DEFAULT 'Basic',
	balance NUMERIC(12,2) NOT NULL DEFAULT 0,
	completed_count_today INT NOT NULL DEFAULT 0,
	last_reset_date TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS completed_tasks (
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	task_key TEXT NOT NULL,
	category TEXT NOT NULL,
	task_id TEXT NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	claimed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, task_key)
);

CREATE TABLE IF NOT EXISTS tasks (
	category TEXT NOT NULL,
	task_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	expires_at TIMESTAMPTZ,
	PRIMARY KEY (category, task_id)
);

CREATE TABLE IF NOT EXISTS quiz_sets (
	id UUID PRIMARY KEY,
	category TEXT NOT NULL,
	topic TEXT NOT NULL,
	questions JSONB NOT NULL,
	UNIQUE (category, topic)
);

CREATE TABLE IF NOT EXISTS payments (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	mpesa_code TEXT NOT NULL UNIQUE,
	amount NUMERIC(12,2) NOT NULL,
	tier TEXT NOT NULL,
	confirmed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	type TEXT NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	mpesa_number TEXT,
	reference TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS device_tokens (
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	token TEXT PRIMARY KEY,
	platform TEXT NOT NULL DEFAULT 'android',
	registered_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_users_referred_by ON users(referred_by);
`

// EnsureSchema creates the tables the services expect.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
