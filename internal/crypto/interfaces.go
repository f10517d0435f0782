package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// TokenSealer protects the bearer token while it is at rest. The credential
// stores hold only sealed values and never see the key.
type TokenSealer interface {
	// Seal encrypts plaintext and returns a Base64 blob of nonce || ciphertext.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the blob was produced with another
	// key or was tampered with.
	Open(sealed string) (string, error)
}
