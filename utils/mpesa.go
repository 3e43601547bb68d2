package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// M-Pesa confirmation SMS, e.g.:
//
//	SFR4X8K2QP Confirmed. Ksh350.00 sent to JIBUCASH ...
//
// The code is the leading 10-char alphanumeric receipt number; the amount
// follows "Ksh" and may carry thousands separators.
var (
	mpesaCodeRe   = regexp.MustCompile(`^([A-Z0-9]{10})\s+Confirmed\.`)
	mpesaAmountRe = regexp.MustCompile(`[Kk][Ss][Hh]\.?\s?([0-9,]+(?:\.[0-9]{1,2})?)`)
)

type MpesaConfirmation struct {
	Code   string
	Amount float64
}

// ParseMpesaMessage extracts the receipt code and amount from a pasted
// confirmation message. It tolerates surrounding whitespace but nothing
// else; a message that does not look like a confirmation is rejected.
func ParseMpesaMessage(message string) (*MpesaConfirmation, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, fmt.Errorf("empty message")
	}

	codeMatch := mpesaCodeRe.FindStringSubmatch(msg)
	if codeMatch == nil {
		return nil, fmt.Errorf("message does not look like an M-Pesa confirmation")
	}

	amountMatch := mpesaAmountRe.FindStringSubmatch(msg)
	if amountMatch == nil {
		return nil, fmt.Errorf("no amount found in confirmation message")
	}

	raw := strings.ReplaceAll(amountMatch[1], ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amountMatch[1], err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("non-positive amount in confirmation message")
	}

	return &MpesaConfirmation{Code: codeMatch[1], Amount: amount}, nil
}
