package main

import (
	"expvar"
	"kassa/internal/payments"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// created / rejected / failed counts, served at /v1/debug/vars
var redirectStats = expvar.NewMap("payment_redirects")

// loggedCredentials warns every time a payment is signed with placeholder
// credentials, so dev mode cannot go unnoticed in a shared log.
type loggedCredentials struct {
	next   payments.CredentialSource
	logger *zap.SugaredLogger
}

func (c *loggedCredentials) Resolve() (payments.SigningContext, error) {
	sc, err := c.next.Resolve()
	if err == nil && sc.Insecure {
		c.logger.Warnw("signing payment with placeholder freekassa credentials", "signing_context", sc)
	}
	return sc, err
}

func paymentMethod(r *http.Request) string {
	if method := strings.TrimSpace(r.URL.Query().Get("method")); method != "" {
		return method
	}
	return payments.ProviderFreeKassa
}

// createPaymentRedirectHandler godoc
//
//	@Summary		Create a payment redirect
//	@Description	Validates a payment intent and returns the signed gateway URL the payer must be sent to
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			method	query		string					false	"Payment provider, defaults to freekassa"
//	@Param			payload	body		payments.PaymentIntent	true	"Payment intent"
//	@Success		200		{object}	payments.PaymentRedirect
//	@Failure		400		{object}	error	"Missing or malformed field"
//	@Failure		429		{object}	error	"Rate limit exceeded"
//	@Failure		500		{object}	error	"Gateway not configured or redirect could not be built"
//	@Router			/payments/redirect [post]
func (app *application) createPaymentRedirectHandler(w http.ResponseWriter, r *http.Request) {
	var payload payments.PaymentIntent
	if err := readJSON(w, r, &payload); err != nil {
		redirectStats.Add("rejected", 1)
		app.badRequestResponse(w, r, err)
		return
	}

	redirect, err := app.payments.CreatePaymentRedirect(r.Context(), paymentMethod(r), payload)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	redirectStats.Add("created", 1)
	if err := writeJSON(w, http.StatusOK, redirect); err != nil {
		app.internalServerError(w, r, err)
	}
}

// startPaymentRedirectHandler godoc
//
//	@Summary		Redirect the payer to the gateway
//	@Description	Same as POST /payments/redirect but takes the intent from the query string and answers 302, for plain links on the site
//	@Tags			payments
//	@Param			amount		query	string	true	"Amount in roubles"
//	@Param			orderId		query	string	true	"Order identifier"
//	@Param			email		query	string	true	"Payer email"
//	@Param			description	query	string	false	"Free text, not signed"
//	@Param			method		query	string	false	"Payment provider, defaults to freekassa"
//	@Success		302
//	@Failure		400	{object}	error	"Missing or malformed field"
//	@Failure		500	{object}	error	"Gateway not configured or redirect could not be built"
//	@Router			/payments/redirect/start [get]
func (app *application) startPaymentRedirectHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	intent := payments.PaymentIntent{
		Amount:      payments.NewAmount(q.Get("amount")),
		OrderID:     q.Get("orderId"),
		Email:       q.Get("email"),
		Description: q.Get("description"),
	}

	redirect, err := app.payments.CreatePaymentRedirect(r.Context(), paymentMethod(r), intent)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	redirectStats.Add("created", 1)
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("Referrer-Policy", "no-referrer")
	http.Redirect(w, r, redirect.URL, http.StatusFound)
}
