package handlers

import (
	"testing"

	"jibuCashAPI/internal/user"
	"jibuCashAPI/internal/wallet"
)

func TestSignUpValidation(t *testing.T) {
	req := user.SignUpRequest{
		Username:        "jane",
		Email:           "not-an-email",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	}

	err := validate.Struct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	errs := fieldErrors(err)
	if errs["email"] != "Email is not valid" {
		t.Errorf("email error = %q", errs["email"])
	}
	if errs["confirmPassword"] != "Passwords do not match" {
		t.Errorf("confirmPassword error = %q", errs["confirmPassword"])
	}
}

func TestSignUpShortPassword(t *testing.T) {
	req := user.SignUpRequest{
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "abc",
		ConfirmPassword: "abc",
	}

	err := validate.Struct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if msg := fieldErrors(err)["password"]; msg != "Password must be at least 6 characters" {
		t.Errorf("password error = %q", msg)
	}
}

func TestSignUpReferralCodeOptional(t *testing.T) {
	req := user.SignUpRequest{
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if err := validate.Struct(&req); err != nil {
		t.Fatalf("empty referral code should pass: %v", err)
	}

	req.ReferralCode = "AB12"
	if err := validate.Struct(&req); err == nil {
		t.Fatal("short referral code should fail")
	}

	req.ReferralCode = "AB12CD34"
	if err := validate.Struct(&req); err != nil {
		t.Fatalf("8-char referral code should pass: %v", err)
	}
}

func TestWithdrawValidation(t *testing.T) {
	req := wallet.WithdrawRequest{Amount: 950, MpesaNumber: "07123"}

	err := validate.Struct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if msg := fieldErrors(err)["mpesaNumber"]; msg != "Invalid M-Pesa number" {
		t.Errorf("mpesaNumber error = %q", msg)
	}

	req.MpesaNumber = "0712345678"
	if err := validate.Struct(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.MpesaNumber = "071234567a"
	if err := validate.Struct(&req); err == nil {
		t.Fatal("non-numeric M-Pesa number should fail")
	}
}
