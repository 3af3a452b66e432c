package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role tags carried in the token payload.
const (
	RoleSuperAdmin      = "superadmin"
	RoleAdminSecondaire = "adminsecondaire"
	RoleAdmin           = "admin"
)

var ErrInvalidToken = errors.New("invalid token")

// Tokens signs and verifies bearer tokens. The secret and TTL come from
// the process config; there is no refresh or revocation mechanism.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Sign(id, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(t.ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

func (t *Tokens) Verify(tokenStr string) (id, role string, err error) {
	tok, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return "", "", ErrInvalidToken
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	id, _ = mapc["id"].(string)
	role, _ = mapc["role"].(string)
	if id == "" || role == "" {
		return "", "", ErrInvalidToken
	}
	return id, role, nil
}
