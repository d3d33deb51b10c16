package payments

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	EnvMerchantID = "FREEKASSA_MERCHANT_ID"
	EnvSecretKey  = "FREEKASSA_SECRET_KEY"
	EnvDevMode    = "FREEKASSA_DEV_MODE"
	EnvBaseURL    = "FREEKASSA_BASE_URL"

	// CurrencyRUB is the only currency this integration sells in.
	CurrencyRUB = "RUB"
)

// Placeholder credentials the site historically fell back to. Only handed
// out when FREEKASSA_DEV_MODE is true.
const (
	devMerchantID = "12345"
	devSecretKey  = "secret_key"
)

// SigningContext holds the merchant credentials for one signature.
// SecretKey must never reach a URL, a log line or an error message.
type SigningContext struct {
	MerchantID string
	SecretKey  string
	Currency   string
	Insecure   bool // built from dev placeholders
}

func (s SigningContext) String() string {
	return fmt.Sprintf("SigningContext{merchant=%s currency=%s insecure=%t secret=[redacted]}", s.MerchantID, s.Currency, s.Insecure)
}

func (s SigningContext) GoString() string {
	return s.String()
}

// MarshalLogObject keeps the secret out of zap output when the context is
// passed as a field.
func (s SigningContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("merchant_id", s.MerchantID)
	enc.AddString("currency", s.Currency)
	enc.AddBool("insecure", s.Insecure)
	return nil
}

// CredentialSource resolves the signing context for a payment.
type CredentialSource interface {
	Resolve() (SigningContext, error)
}

// CredentialFunc adapts a plain function to CredentialSource.
type CredentialFunc func() (SigningContext, error)

func (f CredentialFunc) Resolve() (SigningContext, error) {
	return f()
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvCredentials reads merchant credentials from the process environment.
type EnvCredentials struct {
	lookup LookupFunc
}

func NewEnvCredentials(lookup LookupFunc) *EnvCredentials {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvCredentials{lookup: lookup}
}

// Resolve fails closed with a ConfigurationError when either credential is
// absent, unless dev mode is switched on explicitly.
func (e *EnvCredentials) Resolve() (SigningContext, error) {
	sc := SigningContext{
		MerchantID: e.get(EnvMerchantID),
		SecretKey:  e.get(EnvSecretKey),
		Currency:   CurrencyRUB,
	}

	var missing []string
	if sc.MerchantID == "" {
		missing = append(missing, EnvMerchantID)
	}
	if sc.SecretKey == "" {
		missing = append(missing, EnvSecretKey)
	}
	if len(missing) == 0 {
		return sc, nil
	}

	if !e.DevMode() {
		return SigningContext{}, &ConfigurationError{Missing: missing}
	}

	if sc.MerchantID == "" {
		sc.MerchantID = devMerchantID
	}
	if sc.SecretKey == "" {
		sc.SecretKey = devSecretKey
	}
	sc.Insecure = true
	return sc, nil
}

// DevMode reports whether FREEKASSA_DEV_MODE parses as true.
func (e *EnvCredentials) DevMode() bool {
	val, exists := e.lookup(EnvDevMode)
	if !exists {
		return false
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(val))
	return err == nil && enabled
}

func (e *EnvCredentials) get(key string) string {
	val, _ := e.lookup(key)
	return strings.TrimSpace(val)
}
