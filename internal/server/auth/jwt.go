package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

// Issuer is the iss claim of every access token.
const Issuer = "chirp"

var errEmptySecret = errors.New("empty signing key")

// GenerateToken mints an HS256 access token for userID valid for ttl.
// Timestamps are whole seconds, truncated.
func GenerateToken(userID string, secretKey []byte, ttl time.Duration) (string, error) {
	return generateToken(userID, secretKey, ttl, time.Now())
}

// GetUserIDFromToken verifies signature, issuer and expiry and returns the
// sub claim. Every failure is Unauthenticated("Invalid or expired token").
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	return parseToken(tokenString, secretKey, time.Now())
}

func generateToken(userID string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	if len(secretKey) == 0 {
		return "", errEmptySecret
	}

	now = now.UTC().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return tokenString, nil
}

func parseToken(tokenString string, secretKey []byte, now time.Time) (string, error) {
	invalid := common.Unauthenticated(common.MsgInvalidAccessToken)
	if len(secretKey) == 0 {
		return "", invalid
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", invalid
	}

	return claims.Subject, nil
}
