package referral

import "time"

type Entry struct {
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Info struct {
	ReferralCode   string  `json:"referralCode"`
	TotalEarnings  float64 `json:"totalEarnings"`
	PendingPayouts float64 `json:"pendingPayouts"`
	ReferralCount  int     `json:"referralCount"`
	History        []Entry `json:"history"`
}
