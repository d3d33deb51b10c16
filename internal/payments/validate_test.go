package payments

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateIntent(t *testing.T) {
	valid := PaymentIntent{
		Amount:  NewAmount("100"),
		OrderID: "ORD1",
		Email:   "payer@example.com",
	}

	tests := []struct {
		name      string
		mutate    func(in *PaymentIntent)
		wantField string
	}{
		{"valid", func(in *PaymentIntent) {}, ""},
		{"missing amount", func(in *PaymentIntent) { in.Amount = Amount{} }, "amount"},
		{"non numeric amount", func(in *PaymentIntent) { in.Amount = NewAmount("ten") }, "amount"},
		{"zero amount", func(in *PaymentIntent) { in.Amount = NewAmount("0") }, "amount"},
		{"negative amount", func(in *PaymentIntent) { in.Amount = NewAmount("-5") }, "amount"},
		{"missing order id", func(in *PaymentIntent) { in.OrderID = "" }, "orderId"},
		{"blank order id", func(in *PaymentIntent) { in.OrderID = "   " }, "orderId"},
		{"missing email", func(in *PaymentIntent) { in.Email = "" }, "email"},
		{"malformed email", func(in *PaymentIntent) { in.Email = "not-an-email" }, "email"},
		{"description optional", func(in *PaymentIntent) { in.Description = "Ticket for Saturday" }, ""},
		{"order id at limit", func(in *PaymentIntent) { in.OrderID = strings.Repeat("x", 64) }, ""},
		{"order id too long", func(in *PaymentIntent) { in.OrderID = strings.Repeat("x", 65) }, "orderId"},
		{"order id not utf8", func(in *PaymentIntent) { in.OrderID = "ORD\xff\xfe" }, "orderId"},
		{"description at limit", func(in *PaymentIntent) { in.Description = strings.Repeat("d", 255) }, ""},
		{"description too long", func(in *PaymentIntent) { in.Description = strings.Repeat("d", 256) }, "description"},
		{"description not utf8", func(in *PaymentIntent) { in.Description = "\xc3\x28" }, "description"},
		{"kopecks", func(in *PaymentIntent) { in.Amount = NewAmount("99.99") }, ""},
		{"trailing zeros", func(in *PaymentIntent) { in.Amount = NewAmount("100.500") }, ""},
		{"fraction of a kopeck", func(in *PaymentIntent) { in.Amount = NewAmount("0.001") }, "amount"},
		{"long fraction", func(in *PaymentIntent) { in.Amount = NewAmount("100.000000000000000000001") }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := validateIntent(in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("validateIntent() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("validateIntent() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("errors.Is(err, ErrValidation) = false")
			}
		})
	}
}

func TestValidateIntentMessages(t *testing.T) {
	valid := PaymentIntent{
		Amount:  NewAmount("100"),
		OrderID: "ORD1",
		Email:   "payer@example.com",
	}

	tests := []struct {
		name    string
		mutate  func(in *PaymentIntent)
		wantMsg string
	}{
		{"order id too long", func(in *PaymentIntent) { in.OrderID = strings.Repeat("x", 65) }, "orderId is too long"},
		{"description too long", func(in *PaymentIntent) { in.Description = strings.Repeat("d", 256) }, "description is too long"},
		{"order id not utf8", func(in *PaymentIntent) { in.OrderID = "\xff\xfe" }, "orderId must be valid UTF-8 text"},
		{"fraction of a kopeck", func(in *PaymentIntent) { in.Amount = NewAmount("0.001") }, "amount must have at most two decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := validateIntent(in)
			if err == nil {
				t.Fatal("validateIntent() error = nil")
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidateIntentCanonicalAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"100", "100"},
		{"100.50", "100.5"},
		{"0100", "100"},
		{" 42.00 ", "42"},
		{"100.500", "100.5"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			in, err := validateIntent(PaymentIntent{
				Amount:  NewAmount(tt.raw),
				OrderID: "ORD1",
				Email:   "payer@example.com",
			})
			if err != nil {
				t.Fatalf("validateIntent() error = %v", err)
			}
			if in.amount != tt.want {
				t.Errorf("amount = %q, want %q", in.amount, tt.want)
			}
		})
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"amount":100.5}`, "100.5"},
		{"string", `{"amount":"250"}`, "250"},
		{"padded string", `{"amount":" 7 "}`, "7"},
		{"null", `{"amount":null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in PaymentIntent
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := in.Amount.String(); got != tt.want {
				t.Errorf("Amount = %q, want %q", got, tt.want)
			}
		})
	}
}
