package token

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in a signed token: just the user identifier.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Signer mints and verifies HS256 tokens with a process-wide secret. Tokens
// carry no expiration and stay valid until the secret is rotated.
type Signer struct {
	Secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{Secret: []byte(secret)}
}

func (s *Signer) Sign(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	return t.SignedString(s.Secret)
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
