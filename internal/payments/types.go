package payments

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentIntent is what the site sends when a payer clicks "pay".
type PaymentIntent struct {
	Amount      Amount `json:"amount" validate:"required,numeric,positiveamount,kopecks" swaggertype:"string" example:"100.50"`
	OrderID     string `json:"orderId" validate:"required,max=64,utf8" example:"ORD1"`
	Email       string `json:"email" validate:"required,email" example:"payer@example.com"`
	Description string `json:"description,omitempty" validate:"max=255,utf8"` // shown to nobody, not signed
}

// PaymentRedirect is the link the payer is sent to.
type PaymentRedirect struct {
	URL string `json:"url"`
}

// Amount accepts both JSON numbers (100.5) and numeric strings ("100.5").
// Shape checks happen in validation so a bad amount is reported like any
// other invalid field.
type Amount struct {
	raw string
}

func NewAmount(s string) Amount {
	return Amount{raw: strings.TrimSpace(s)}
}

func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{raw: d.String()}
}

func (a Amount) String() string {
	return a.raw
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		a.raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		a.raw = strings.TrimSpace(s)
		return nil
	}
	a.raw = string(b)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}

// canonical is the form used both in the signing string and in the oa
// parameter: "100.50" and 100.5 both become "100.5".
func (a Amount) canonical() (string, error) {
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
