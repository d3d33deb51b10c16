package payments

import (
	"context"
	"strings"
)

const ProviderFreeKassa = "freekassa"

type PaymentManager struct {
	gateways map[string]PaymentGateway
}

func NewPaymentManager() *PaymentManager {
	return &PaymentManager{gateways: make(map[string]PaymentGateway)}
}

// RegisterGateway is not safe to call once requests are being served.
func (m *PaymentManager) RegisterGateway(name string, gateway PaymentGateway) {
	m.gateways[strings.ToLower(name)] = gateway
}

func (m *PaymentManager) CreatePaymentRedirect(ctx context.Context, method string, intent PaymentIntent) (PaymentRedirect, error) {
	gateway, ok := m.gateways[strings.ToLower(strings.TrimSpace(method))]
	if !ok {
		return PaymentRedirect{}, &ValidationError{Field: "method", Rule: "provider"}
	}
	return gateway.CreatePaymentRedirect(ctx, intent)
}
