// internal/app/system/token/token.go
package token

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid (150 days).
const DefaultTTL = 150 * 24 * time.Hour

// ErrInvalidToken is returned by Parse for tokens that fail signature or
// claim validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by an issued bearer token. The "id" claim holds the hex
// ObjectID of the user the token asserts.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Issuer signs bearer tokens with a process-wide HMAC secret loaded at
// startup. It is read-only after construction and safe for concurrent use.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. If ttl is 0 or negative, DefaultTTL is used.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token asserting the given user ID,
// expiring TTL from now.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse validates a token string and returns its claims. No endpoint
// currently requires a token; this exists for diagnostics and tests.
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	return c, nil
}
