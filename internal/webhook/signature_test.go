package webhook

import (
	"testing"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACVerifier_RoundTrip(t *testing.T) {
	v := NewHMACVerifier("whsec_test")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	header := v.Sign(payload)

	require.NoError(t, v.Verify(payload, header))
}

func TestHMACVerifier_TamperedBody(t *testing.T) {
	v := NewHMACVerifier("whsec_test")

	payload := []byte(`{"id":"evt_1"}`)
	header := v.Sign(payload)

	err := v.Verify([]byte(`{"id":"evt_2"}`), header)

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestHMACVerifier_WrongSecret(t *testing.T) {
	signer := NewHMACVerifier("whsec_a")
	verifier := NewHMACVerifier("whsec_b")

	payload := []byte(`{"id":"evt_1"}`)
	err := verifier.Verify(payload, signer.Sign(payload))

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestHMACVerifier_MissingPrefix(t *testing.T) {
	v := NewHMACVerifier("whsec_test")

	err := v.Verify([]byte(`{}`), "deadbeef")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestHMACVerifier_MalformedHex(t *testing.T) {
	v := NewHMACVerifier("whsec_test")

	err := v.Verify([]byte(`{}`), "sha256=not-hex")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestHMACVerifier_EmptyHeader(t *testing.T) {
	v := NewHMACVerifier("whsec_test")

	err := v.Verify([]byte(`{}`), "")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestHMACVerifier_EmptySecret(t *testing.T) {
	v := NewHMACVerifier("")

	payload := []byte(`{}`)
	err := v.Verify(payload, v.Sign(payload))

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}
