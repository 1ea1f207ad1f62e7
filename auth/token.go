package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type MissingTokenError struct{}

func (e MissingTokenError) Error() string {
	return "Authentication token is missing"
}

type InvalidTokenError struct{}

func (e InvalidTokenError) Error() string {
	return "Authentication token is invalid"
}

type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies the HS256 access tokens that carry a
// player's identity between requests.
type TokenAuthority struct {
	secret        []byte
	expiryMinutes int
}

func NewTokenAuthority(secret string, expiryMinutes int) *TokenAuthority {
	return &TokenAuthority{
		secret:        []byte(secret),
		expiryMinutes: expiryMinutes,
	}
}

func (a *TokenAuthority) Generate(userID uint64, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(a.expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hilo-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *TokenAuthority) Parse(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, MissingTokenError{}
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, InvalidTokenError{}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, InvalidTokenError{}
	}
	return claims, nil
}
