package payments

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

const (
	DefaultFreeKassaURL = "https://pay.freekassa.ru/"
	freeKassaLang       = "ru"
)

type FreeKassaAdapter struct {
	credentials CredentialSource
	baseURL     string
}

func NewFreeKassaAdapter(credentials CredentialSource, baseURL string) *FreeKassaAdapter {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultFreeKassaURL
	}
	return &FreeKassaAdapter{
		credentials: credentials,
		baseURL:     baseURL,
	}
}

// CreatePaymentRedirect validates the intent, resolves credentials, signs and
// builds the gateway link. Nothing is returned unless every step succeeds.
func (f *FreeKassaAdapter) CreatePaymentRedirect(ctx context.Context, intent PaymentIntent) (PaymentRedirect, error) {
	in, err := validateIntent(intent)
	if err != nil {
		return PaymentRedirect{}, err
	}

	sc, err := f.credentials.Resolve()
	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			return PaymentRedirect{}, err
		}
		return PaymentRedirect{}, &ConstructionError{Op: "resolve credentials", Err: err}
	}

	signature := Sign(sc, in.amount, in.orderID)

	link, err := f.redirectURL(sc, in, signature)
	if err != nil {
		return PaymentRedirect{}, err
	}
	return PaymentRedirect{URL: link}, nil
}

// redirectURL writes the query by hand: url.Values.Encode sorts keys and the
// parameter order is kept stable for the gateway and for tests.
func (f *FreeKassaAdapter) redirectURL(sc SigningContext, in validIntent, signature string) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", &ConstructionError{Op: "parse gateway endpoint", Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &ConstructionError{Op: "parse gateway endpoint", Err: errors.New("endpoint must be an absolute URL")}
	}
	if u.Path == "" {
		u.Path = "/"
	}

	params := []struct{ key, value string }{
		{"m", sc.MerchantID},
		{"oa", in.amount},
		{"currency", sc.Currency},
		{"o", in.orderID},
		{"s", signature},
		{"em", in.email},
		{"lang", freeKassaLang},
		{"us_email", in.email},
	}

	var q strings.Builder
	for i, p := range params {
		if i > 0 {
			q.WriteByte('&')
		}
		q.WriteString(p.key)
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.value))
	}

	u.RawQuery = q.String()
	u.Fragment = ""
	return u.String(), nil
}
