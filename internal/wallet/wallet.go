package wallet

import "time"

// MinWithdrawalKSH is the smallest amount M-Pesa payouts accept in the
// product.
const MinWithdrawalKSH = 900

type Wallet struct {
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

type WithdrawRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	MpesaNumber string  `json:"mpesaNumber" validate:"required,len=10,numeric"`
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"` // "withdrawal" | "reward"
	Amount      float64   `json:"amount"`
	MpesaNumber string    `json:"mpesaNumber,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
