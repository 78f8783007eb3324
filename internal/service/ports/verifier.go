package ports

// SignatureVerifier authenticates a raw webhook body against the
// signature header supplied by the provider.
type SignatureVerifier interface {
	Verify(payload []byte, signatureHeader string) error
}
