package jwtmanager

import (
	"fmt"
	"strings"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager mints the short-lived HS256 service tokens attached to outbound
// registry/archive/production calls.
type JWTManager struct {
	secret  []byte
	subject string
	ttl     time.Duration
}

func NewJWTManager(cfg *config.InternalConfig) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.ServiceAuth.JWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("SERVICE_JWT_SECRET is empty")
	}
	return &JWTManager{
		secret:  []byte(secret),
		subject: cfg.ServiceAuth.Subject,
		ttl:     5 * time.Minute,
	}, nil
}

// CreateToken signs a token with iat/nbf now and exp now + 5 minutes.
func (j *JWTManager) CreateToken() (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": j.subject,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}
