package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/archiveone/bookingcore/internal/domain"
)

// SignatureHeader is the request header carrying the provider signature.
const SignatureHeader = "X-Provider-Signature"

const signaturePrefix = "sha256="

// HMACVerifier authenticates webhook deliveries: the provider signs the
// exact raw request body with HMAC-SHA256 over a pre-shared secret and
// sends the hex digest as "sha256=<hex>".
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify returns domain.ErrInvalidSignature for every failure mode, so the
// response never reveals which part of the check did not match.
func (v *HMACVerifier) Verify(payload []byte, signatureHeader string) error {
	if len(v.secret) == 0 {
		return domain.ErrInvalidSignature
	}

	hexDigest, ok := strings.CutPrefix(signatureHeader, signaturePrefix)
	if !ok {
		return domain.ErrInvalidSignature
	}

	got, err := hex.DecodeString(hexDigest)
	if err != nil {
		return domain.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)

	if !hmac.Equal(got, mac.Sum(nil)) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// Sign produces the signature header value for a payload. Used by tests
// and by local tooling that replays provider events.
func (v *HMACVerifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
