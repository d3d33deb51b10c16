package payments

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func envLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestEnvCredentialsResolve(t *testing.T) {
	creds := NewEnvCredentials(envLookup(map[string]string{
		EnvMerchantID: " 54321 ",
		EnvSecretKey:  "word1",
	}))

	sc, err := creds.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if sc.MerchantID != "54321" || sc.SecretKey != "word1" || sc.Currency != CurrencyRUB || sc.Insecure {
		t.Errorf("Resolve() = %+v", sc)
	}
}

func TestEnvCredentialsFailClosed(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantMissing []string
	}{
		{"nothing set", map[string]string{}, []string{EnvMerchantID, EnvSecretKey}},
		{"no secret", map[string]string{EnvMerchantID: "54321"}, []string{EnvSecretKey}},
		{"blank merchant", map[string]string{EnvMerchantID: "  ", EnvSecretKey: "word1"}, []string{EnvMerchantID}},
		{"dev mode off", map[string]string{EnvDevMode: "false"}, []string{EnvMerchantID, EnvSecretKey}},
		{"dev mode garbage", map[string]string{EnvDevMode: "yes please"}, []string{EnvMerchantID, EnvSecretKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEnvCredentials(envLookup(tt.env)).Resolve()

			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Resolve() error = %v, want *ConfigurationError", err)
			}
			if got, want := strings.Join(cerr.Missing, ","), strings.Join(tt.wantMissing, ","); got != want {
				t.Errorf("Missing = %s, want %s", got, want)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Error("errors.Is(err, ErrConfiguration) = false")
			}
		})
	}
}

func TestEnvCredentialsDevMode(t *testing.T) {
	creds := NewEnvCredentials(envLookup(map[string]string{
		EnvDevMode:    "true",
		EnvMerchantID: "54321",
	}))

	sc, err := creds.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !sc.Insecure {
		t.Error("Insecure = false, want true for placeholder credentials")
	}
	if sc.MerchantID != "54321" {
		t.Errorf("MerchantID = %q, want the configured value", sc.MerchantID)
	}
	if sc.SecretKey != devSecretKey {
		t.Errorf("SecretKey was not filled from the placeholder")
	}
}

func TestSigningContextRedaction(t *testing.T) {
	sc := SigningContext{MerchantID: "54321", SecretKey: "word1", Currency: CurrencyRUB}

	for _, out := range []string{
		fmt.Sprint(sc),
		fmt.Sprintf("%v", sc),
		fmt.Sprintf("%+v", sc),
		fmt.Sprintf("%#v", sc),
	} {
		if strings.Contains(out, "word1") {
			t.Errorf("formatted context leaks the secret: %s", out)
		}
	}

	core, logs := observer.New(zap.InfoLevel)
	zap.New(core).Sugar().Infow("signing", "signing_context", sc)

	for _, entry := range logs.All() {
		for key, val := range entry.ContextMap() {
			if strings.Contains(fmt.Sprint(val), "word1") {
				t.Errorf("log field %s leaks the secret: %v", key, val)
			}
		}
	}
}
