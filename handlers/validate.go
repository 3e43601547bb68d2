package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors converts validator failures to the field-level messages the
// app renders inline, e.g. {"mpesaNumber": "Invalid M-Pesa number"}.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = "Invalid request"
		return out
	}

	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = friendlyName(field) + " is required"
		case "email":
			out[field] = "Email is not valid"
		case "min":
			out[field] = friendlyName(field) + " must be at least " + fe.Param() + " characters"
		case "eqfield":
			out[field] = "Passwords do not match"
		case "len", "numeric":
			out[field] = "Invalid " + friendlyName(field)
		case "gt":
			out[field] = "Invalid " + friendlyName(field)
		default:
			out[field] = "Invalid " + friendlyName(field)
		}
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func friendlyName(field string) string {
	switch field {
	case "mpesaNumber":
		return "M-Pesa number"
	case "confirmPassword":
		return "Confirm Password"
	case "amount":
		return "Amount"
	case "username":
		return "Username"
	case "email":
		return "Email"
	case "password":
		return "Password"
	default:
		return field
	}
}
