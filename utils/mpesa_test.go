package utils

import "testing"

func TestParseMpesaMessage(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantCode   string
		wantAmount float64
	}{
		{
			name:       "standard tier payment",
			message:    "SFR4X8K2QP Confirmed. Ksh350.00 sent to JIBUCASH LTD on 12/3/25 at 4:02 PM.",
			wantCode:   "SFR4X8K2QP",
			wantAmount: 350,
		},
		{
			name:       "premium without decimals",
			message:    "QWE7R2T9UM Confirmed. Ksh700 sent to JIBUCASH LTD.",
			wantCode:   "QWE7R2T9UM",
			wantAmount: 700,
		},
		{
			name:       "elite with thousands separator",
			message:    "ABC1234XYZ Confirmed. Ksh1,000.00 sent to JIBUCASH LTD.",
			wantCode:   "ABC1234XYZ",
			wantAmount: 1000,
		},
		{
			name:       "lowercase ksh with dot",
			message:    "ZZZ9Y8X7W6 Confirmed. ksh. 350.00 sent to JIBUCASH LTD.",
			wantCode:   "ZZZ9Y8X7W6",
			wantAmount: 350,
		},
		{
			name:       "leading whitespace",
			message:    "  TR5B2N8M1K Confirmed. Ksh350.00 sent to JIBUCASH LTD.  ",
			wantCode:   "TR5B2N8M1K",
			wantAmount: 350,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := ParseMpesaMessage(tt.message)
			if err != nil {
				t.Fatalf("ParseMpesaMessage failed: %v", err)
			}
			if conf.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", conf.Code, tt.wantCode)
			}
			if conf.Amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", conf.Amount, tt.wantAmount)
			}
		})
	}
}

func TestParseMpesaMessageRejectsGarbage(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"plain text", "hello there"},
		{"short code", "ABC123 Confirmed. Ksh350.00"},
		{"lowercase code", "sfr4x8k2qp Confirmed. Ksh350.00"},
		{"missing confirmed", "SFR4X8K2QP Ksh350.00 sent to JIBUCASH"},
		{"no amount", "SFR4X8K2QP Confirmed. sent to JIBUCASH LTD."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMpesaMessage(tt.message); err == nil {
				t.Fatalf("expected error for %q", tt.message)
			}
		})
	}
}
