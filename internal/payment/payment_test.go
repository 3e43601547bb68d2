package payment

import (
	"testing"

	"jibuCashAPI/internal/session"
)

func TestTierForAmount(t *testing.T) {
	tests := []struct {
		amount float64
		tier   session.Tier
		ok     bool
	}{
		{350, session.TierStandard, true},
		{700, session.TierPremium, true},
		{1000, session.TierElite, true},
		{0, "", false},
		{349, "", false},
		{351, "", false},
		{900, "", false}, // the withdrawal minimum is not a plan price
	}

	for _, tt := range tests {
		tier, ok := TierForAmount(tt.amount)
		if ok != tt.ok || tier != tt.tier {
			t.Errorf("TierForAmount(%v) = (%q, %v), want (%q, %v)", tt.amount, tier, ok, tt.tier, tt.ok)
		}
	}
}
