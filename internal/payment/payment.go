package payment

import (
	"time"

	"jibuCashAPI/internal/session"
)

// TierPriceKSH maps each paid tier to its one-off M-Pesa price. Basic is
// free and never appears in a payment.
var TierPriceKSH = map[session.Tier]float64{
	session.TierStandard: 350,
	session.TierPremium:  700,
	session.TierElite:    1000,
}

// TierForAmount resolves a parsed M-Pesa amount to the tier it purchases.
func TierForAmount(amount float64) (session.Tier, bool) {
	for tier, price := range TierPriceKSH {
		if price == amount {
			return tier, true
		}
	}
	return "", false
}

// ConfirmRequest carries the raw confirmation SMS the user pasted.
type ConfirmRequest struct {
	Message string `json:"message" validate:"required"`
}

type Payment struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	MpesaCode   string       `json:"mpesaCode"`
	Amount      float64      `json:"amount"`
	Tier        session.Tier `json:"tier"`
	ConfirmedAt time.Time    `json:"confirmedAt"`
}
