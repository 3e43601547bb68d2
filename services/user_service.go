package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"jibuCashAPI/internal/referral"
	"jibuCashAPI/internal/user"
	"jibuCashAPI/utils"
)

type UserService struct {
	db       *pgxpool.Pool
	sessions *SessionService
}

func NewUserService(db *pgxpool.Pool, sessions *SessionService) *UserService {
	return &UserService{db: db, sessions: sessions}
}

// SignUp creates the account and its Basic session in one transaction.
// The referral code is minted here, once per account.
func (s *UserService) SignUp(ctx context.Context, req *user.SignUpRequest) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	var referredBy *string
	if req.ReferralCode != "" {
		var referrerID string
		err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE referral_code = $1`, strings.ToUpper(req.ReferralCode)).Scan(&referrerID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, ErrUnknownReferralCode
			}
			return nil, fmt.Errorf("failed to resolve referral code: %w", err)
		}
		referredBy = &referrerID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.freshReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	u := &user.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		ReferralCode: code,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if referredBy != nil {
		u.ReferredBy = *referredBy
	}

	insert := `
		INSERT INTO users (id, username, email, password_hash, referral_code, referred_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.Exec(ctx, insert, u.ID, u.Username, u.Email, u.PasswordHash, u.ReferralCode, referredBy, u.CreatedAt, u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.sessions.CreateSession(ctx, tx, u.ID, u.Username); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit sign-up: %w", err)
	}

	log.Printf("UserService: created account %s (%s)", u.Username, u.ID)
	return u, nil
}

func (s *UserService) SignIn(ctx context.Context, req *user.SignInRequest) (*user.User, error) {
	u, err := s.getByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetProfile returns the account plus current session state (rollover
// already applied by the session service).
func (s *UserService) GetProfile(ctx context.Context, userID string) (*user.Profile, error) {
	u, err := s.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &user.Profile{User: *u, Session: state}, nil
}

// GetReferralInfo backs the affiliate screen: the code plus who joined
// with it. Earnings stay zero until referral payouts exist.
func (s *UserService) GetReferralInfo(ctx context.Context, userID string) (*referral.Info, error) {
	u, err := s.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `SELECT username, created_at FROM users WHERE referred_by = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close()

	history := []referral.Entry{}
	for rows.Next() {
		var e referral.Entry
		if err := rows.Scan(&e.Username, &e.JoinedAt); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &referral.Info{
		ReferralCode:  u.ReferralCode,
		ReferralCount: len(history),
		History:       history,
	}, nil
}

func (s *UserService) freshReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		code := utils.GenerateReferralCode()
		var exists bool
		if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE referral_code = $1)`, code).Scan(&exists); err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not mint a unique referral code")
}

func (s *UserService) getByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getBy(ctx, `email = $1`, email)
}

func (s *UserService) getByID(ctx context.Context, id string) (*user.User, error) {
	return s.getBy(ctx, `id = $1`, id)
}

func (s *UserService) getBy(ctx context.Context, where string, arg any) (*user.User, error) {
	var u user.User
	var referredBy *string
	query := `
		SELECT id, username, email, password_hash, referral_code, referred_by, created_at, updated_at
		FROM users
		WHERE ` + where
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.ReferralCode,
		&referredBy,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if referredBy != nil {
		u.ReferredBy = *referredBy
	}
	return &u, nil
}
