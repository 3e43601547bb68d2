package services

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/user"
)

// testDB connects to the database named by TEST_DATABASE_URL and applies
// the schema. Tests that need Postgres skip when it is not set.
func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return pool
}

// signUpTestUser creates a throwaway account with a unique email and
// returns it. Each test gets its own user so tests stay independent.
func signUpTestUser(t *testing.T, users *UserService) *user.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	u, err := users.SignUp(context.Background(), &user.SignUpRequest{
		Username:        "tester-" + suffix,
		Email:           fmt.Sprintf("tester-%s@example.com", suffix),
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}
