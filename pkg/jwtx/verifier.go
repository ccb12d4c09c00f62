package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrUnknownKID = errors.New("jwtx: unknown kid")
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")

	ErrUnsupportedAlg = errors.New("jwtx: unsupported algorithm")
)

// NewVerifier returns a Verifier for the given JWS algorithm backed by keys.
// Supported algorithms: RS256, ES256, EdDSA.
func NewVerifier(alg string, keys *KeySet, issuer string, audience []string) (Verifier, error) {
	switch alg {
	case "RS256":
		return &RS256Verifier{keys: keys, issuer: issuer, aud: audience}, nil
	case "ES256":
		return &ES256Verifier{keys: keys, issuer: issuer, aud: audience}, nil
	case "EdDSA":
		return &EdDSAVerifier{keys: keys, issuer: issuer, aud: audience}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlg, alg)
	}
}

// verifyToken parses tokenStr restricted to a single signing method,
// resolving the verification key by kid through keyFor, then applies the
// issuer, audience and expiry checks shared by every algorithm.
func verifyToken(
	method jwt.SigningMethod,
	keyFor func(kid string) (any, error),
	tokenStr string,
	issuer string,
	aud []string,
) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{method.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// The kid selects which key in the set signed this token.
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("jwtx: missing kid")
		}
		return keyFor(kid)
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(aud); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	return *claims, nil
}
