package payments

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the JSON names the caller used.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Amount is validated as the raw string the caller sent.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if a, ok := v.Interface().(Amount); ok {
			return a.raw
		}
		return nil
	}, Amount{})

	validate.RegisterValidation("positiveamount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	// FreeKassa amounts are rubles and kopecks; 100.500 is fine, 0.001 is not.
	validate.RegisterValidation("kopecks", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Equal(d.Truncate(2))
	})

	validate.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
}

// validIntent is an intent that passed validation, with its amount already
// in canonical form.
type validIntent struct {
	amount  string
	orderID string
	email   string
}

func validateIntent(intent PaymentIntent) (validIntent, error) {
	intent.OrderID = strings.TrimSpace(intent.OrderID)
	intent.Email = strings.TrimSpace(intent.Email)

	if err := validate.Struct(intent); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return validIntent{}, &ValidationError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
		}
		return validIntent{}, &ConstructionError{Op: "validate intent", Err: err}
	}

	amount, err := intent.Amount.canonical()
	if err != nil {
		return validIntent{}, &ValidationError{Field: "amount", Rule: "numeric"}
	}

	return validIntent{
		amount:  amount,
		orderID: intent.OrderID,
		email:   intent.Email,
	}, nil
}
