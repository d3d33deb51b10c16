package payments

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const signingDelimiter = ":"

// signingString holds the secret in plain text. Do not log it.
func signingString(sc SigningContext, amount, orderID string) string {
	return strings.Join([]string{sc.MerchantID, amount, sc.SecretKey, sc.Currency, orderID}, signingDelimiter)
}

// Sign returns the lowercase hex MD5 that FreeKassa recomputes from
// m:oa:secret:currency:o. The hash and field order are the gateway's.
func Sign(sc SigningContext, amount, orderID string) string {
	sum := md5.Sum([]byte(signingString(sc, amount, orderID)))
	return hex.EncodeToString(sum[:])
}
