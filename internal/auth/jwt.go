package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSubject = errors.New("token has no subject")

type Config struct {
	Secret          string
	RefreshSecret   string
	Issuer          string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
}

type JWTAuthenticator struct {
	cfg Config
	now func() time.Time
}

func NewJWTAuthenticator(cfg Config) *JWTAuthenticator {
	if cfg.AccessTokenExp == 0 {
		cfg.AccessTokenExp = time.Hour * 24 * 3
	}
	if cfg.RefreshTokenExp == 0 {
		cfg.RefreshTokenExp = time.Hour * 24 * 9
	}
	return &JWTAuthenticator{cfg: cfg, now: time.Now}
}

// GenerateTokens generates both access and refresh tokens
func (a *JWTAuthenticator) GenerateTokens(userID string, role string) (string, string, error) {
	now := a.now()

	accessClaims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(a.cfg.AccessTokenExp).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"iss":  a.cfg.Issuer,
		"aud":  a.cfg.Issuer,
	}

	refreshClaims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(a.cfg.RefreshTokenExp).Unix(),
		"iat":  now.Unix(),
		"iss":  a.cfg.Issuer,
	}

	accessToken, err := sign(accessClaims, a.cfg.Secret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := sign(refreshClaims, a.cfg.RefreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (a *JWTAuthenticator) ValidateAccessToken(token string) (*jwt.Token, error) {
	return a.parse(token, a.cfg.Secret, jwt.WithAudience(a.cfg.Issuer))
}

func (a *JWTAuthenticator) ValidateRefreshToken(token string) (*jwt.Token, error) {
	return a.parse(token, a.cfg.RefreshSecret)
}

func (a *JWTAuthenticator) parse(token, secret string, extra ...jwt.ParserOption) (*jwt.Token, error) {
	opts := append([]jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.cfg.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	}, extra...)

	return jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
}

// Subject returns the user id and role carried by a validated token.
func Subject(token *jwt.Token) (string, string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrMissingSubject
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", "", ErrMissingSubject
	}
	role, _ := claims["role"].(string)
	return sub, role, nil
}
