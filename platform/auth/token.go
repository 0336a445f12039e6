package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenIssuer = "wp-notes-api"

var ErrInvalidToken = errors.New("invalid token")

// TokenConfig holds the settings used to sign and verify bearer tokens.
type TokenConfig struct {
	SecretKey string
	Expiry    time.Duration
	Issuer    string
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Generate(uid uint64, roles []string) (string, error)
	Parse(token string) (User, error)
}

type Claims struct {
	UID   uint64   `json:"uid"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type tokenManager struct {
	config TokenConfig
}

func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = 30 * 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

func (t *tokenManager) Generate(uid uint64, roles []string) (string, error) {
	if uid == 0 {
		return "", errors.New("generate token: user id must be positive")
	}
	now := time.Now()
	claims := &Claims{
		UID:   uid,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   strconv.FormatUint(uid, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *tokenManager) Parse(token string) (User, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(t.config.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(t.config.Issuer))
	if err != nil {
		return User{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UID == 0 {
		return User{}, ErrInvalidToken
	}

	return User{ID: claims.UID, Roles: claims.Roles}, nil
}
