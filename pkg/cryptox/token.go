package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Entropy sizes in bytes before base64url encoding.
const (
	TokenSize128 = 16 // 22 encoded chars
	TokenSize256 = 32 // 43 encoded chars
)

// GenerateToken returns size bytes of CSPRNG output encoded as unpadded
// base64url, safe to embed in URLs and headers.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read entropy: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateToken panics when the entropy source fails. For init paths
// with no caller to hand the error to.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(err)
	}
	return token
}

// FingerprintToken returns the SHA-256 of token as unpadded base64url.
// Stores index invites by this fingerprint so the plaintext token never
// touches disk.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
