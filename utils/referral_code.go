package utils

import (
	"crypto/rand"
	"math/big"
)

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferralCodeLength matches the 8-char codes the affiliate screen shares.
const ReferralCodeLength = 8

// GenerateReferralCode returns a random A-Z0-9 code. Uniqueness is
// enforced by the users table constraint, not here.
func GenerateReferralCode() string {
	code := make([]byte, ReferralCodeLength)
	max := big.NewInt(int64(len(referralAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			code[i] = referralAlphabet[0]
			continue
		}
		code[i] = referralAlphabet[n.Int64()]
	}
	return string(code)
}
