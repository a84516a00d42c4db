package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the claim payload issued when a solve session starts,
// carried by a signed JWT instead of a hand-rolled HMAC envelope.
// Backed by github.com/golang-jwt/jwt/v5 (already part of the
// retrieved smilemakc/mbflow stack).
type SessionToken struct {
	DeviceID   string `json:"device_id"`
	PuzzleID   string `json:"puzzle_id"`
	Seed       string `json:"seed"`
	Difficulty string `json:"difficulty"`
	StartedAt  int64  `json:"started_at"`
	jwt.RegisteredClaims
}

func createToken(secret string, session SessionToken) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, session)
	return token.SignedString([]byte(secret))
}

func verifyToken(secret, tokenString string) (*SessionToken, error) {
	var claims SessionToken
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

func newSessionToken(deviceID, puzzleID, seed, difficulty string, expiry time.Duration) SessionToken {
	now := time.Now()
	return SessionToken{
		DeviceID:   deviceID,
		PuzzleID:   puzzleID,
		Seed:       seed,
		Difficulty: difficulty,
		StartedAt:  now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
}
