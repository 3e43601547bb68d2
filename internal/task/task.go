package task

import "time"

// Category keys match the backend collections the mobile app reads.
type Category string

const (
	CategoryInitial          Category = "initial"
	CategoryPersonalQuizzes  Category = "personalQuizzes"
	CategoryHealthWellness   Category = "healthWellness"
	CategoryGeneralKnowledge Category = "generalKnowledge"
	CategoryMoneySavings     Category = "moneySavings"
)

// AllCategories in the order the home screen renders them.
var AllCategories = []Category{
	CategoryInitial,
	CategoryPersonalQuizzes,
	CategoryHealthWellness,
	CategoryGeneralKnowledge,
	CategoryMoneySavings,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryInitial, CategoryPersonalQuizzes, CategoryHealthWellness,
		CategoryGeneralKnowledge, CategoryMoneySavings:
		return true
	}
	return false
}

// Task id is only unique within its category list; (Category, ID) is the
// cross-category identity.
type Task struct {
	ID          string     `json:"id"`
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"` // initial tasks only, 24h from assignment
}

// Key composes the cross-category identity used in the completed set.
func (t *Task) Key() string {
	return string(t.Category) + ":" + t.ID
}

func (t *Task) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// TimeLeft is seconds until expiry, clamped at 0. Only meaningful for
// initial tasks.
func (t *Task) TimeLeft(now time.Time) int64 {
	if t.ExpiresAt == nil {
		return 0
	}
	left := int64(t.ExpiresAt.Sub(now).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// CardStatus is what the task list reports per card.
type CardStatus string

const (
	StatusAvailable      CardStatus = "available"
	StatusLocked         CardStatus = "locked"
	StatusAlreadyClaimed CardStatus = "alreadyClaimedToday"
	StatusExpired        CardStatus = "expired"
)

// Card is the task list response item.
type Card struct {
	Task
	Status       CardStatus `json:"status"`
	TimeLeftSecs *int64     `json:"timeLeftSecs,omitempty"`
}
