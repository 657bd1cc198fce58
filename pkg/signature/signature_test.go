package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"REF123"}}`)

	tests := []struct {
		name  string
		body  []byte
		sig   string
		valid bool
	}{
		{
			name:  "Valid signature",
			body:  body,
			sig:   Compute(secret, body),
			valid: true,
		},
		{
			name:  "Tampered body",
			body:  []byte(`{"event":"charge.success","data":{"reference":"REF999"}}`),
			sig:   Compute(secret, body),
			valid: false,
		},
		{
			name:  "Wrong secret",
			body:  body,
			sig:   Compute("sk_test_other", body),
			valid: false,
		},
		{
			name:  "Empty signature",
			body:  body,
			sig:   "",
			valid: false,
		},
		{
			name:  "Signature is not hex",
			body:  body,
			sig:   "not-a-hex-string",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Verify(secret, tt.body, tt.sig))
		})
	}
}
