package session

import "time"

// Tier gates whether non-initial tasks are startable.
type Tier string

const (
	TierBasic    Tier = "Basic"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
	TierElite    Tier = "Elite"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium, TierElite:
		return true
	}
	return false
}

// DailyTaskCap is the number of claims allowed per day-window. The product
// applies it uniformly to every tier.
const DailyTaskCap = 3

// State is the per-user session record. completedCountToday always equals
// the size of the completed set for the current day-window; both reset
// together on the daily rollover.
type State struct {
	UserID              string    `json:"userId"`
	Username            string    `json:"username"`
	SubscriptionTier    Tier      `json:"subscriptionTier"`
	Balance             float64   `json:"balance"`
	CompletedTaskKeys   []string  `json:"completedTaskIds"`
	CompletedCountToday int       `json:"completedCountToday"`
	LastResetDate       string    `json:"lastResetDate"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DateKey is the calendar-date string used for lastResetDate comparisons.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *State) HasCompleted(taskKey string) bool {
	for _, k := range s.CompletedTaskKeys {
		if k == taskKey {
			return true
		}
	}
	return false
}
