package signature

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Compute returns the hex-encoded HMAC-SHA512 of body under secret.
func Compute(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a provider-supplied signature against the raw request body.
// The comparison is constant-time. The signature must be computed over the
// exact bytes the provider sent, never a re-serialized form.
func Verify(secret string, body []byte, sig string) bool {
	if sig == "" {
		return false
	}
	expected, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}
