package services

import "errors"

// Lifecycle and wallet failures the handlers map to user-facing messages.
// Nothing here is fatal; every rejection leaves state unchanged.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTierLocked          = errors.New("upgrade your plan to unlock this task")
	ErrAlreadyClaimed      = errors.New("task already claimed today")
	ErrTaskExpired         = errors.New("task has expired")
	ErrDailyCapReached     = errors.New("daily task limit reached")
	ErrAttemptNotFound     = errors.New("no active attempt for this task")
	ErrQuizNotCompleted    = errors.New("quiz is not completed yet")
	ErrNoAnswerSelected    = errors.New("no answer selected")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("minimum withdrawal is KSH 900")
	ErrPaymentNotMatched   = errors.New("payment amount does not match any plan")
	ErrPaymentCodeUsed     = errors.New("this M-Pesa confirmation was already used")
	ErrUnknownReferralCode = errors.New("unknown referral code")
)
