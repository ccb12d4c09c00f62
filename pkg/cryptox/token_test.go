package cryptox_test

import (
	"encoding/base64"
	"testing"

	"github.com/aussiebroadwan/leaguehub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces URL-safe tokens of the expected length", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.Len(t, token, 43) // 32 bytes base64url, no padding

		_, err = base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 1000 {
			token, err := cryptox.GenerateToken(cryptox.TokenSize128)
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup, "token collision")
			seen[token] = struct{}{}
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
		_, err = cryptox.GenerateToken(-1)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		a := cryptox.FingerprintToken("some-token")
		b := cryptox.FingerprintToken("some-token")
		require.Equal(t, a, b)
	})

	t.Run("distinct inputs produce distinct fingerprints", func(t *testing.T) {
		a := cryptox.FingerprintToken("token-a")
		b := cryptox.FingerprintToken("token-b")
		require.NotEqual(t, a, b)
	})

	t.Run("fingerprint does not reveal the token", func(t *testing.T) {
		fp := cryptox.FingerprintToken("secret")
		require.NotContains(t, fp, "secret")
		require.Len(t, fp, 43) // sha256 base64url
	})
}
