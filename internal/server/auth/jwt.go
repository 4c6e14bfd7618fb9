// Package auth issues and validates session tokens.
//
// A token is an HS256 JWT whose signing key is derived from a per-user
// secret, normally the user's current password hash. Changing the password
// therefore revokes every token issued before the change without any
// server-side session state.
package auth

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// keyInfo binds derived keys to this use so the same secret never signs
// anything else.
const keyInfo = "passlocker session token v1"

const keySize = 32

// SigningContext is the process-wide token configuration. Build it once at
// startup and share it read-only.
type SigningContext struct {
	Issuer     string
	Audience   string
	Expiration time.Duration
}

// NewSigningContext validates the settings and returns a SigningContext.
// Missing values are reported as common.ErrConfiguration.
func NewSigningContext(issuer, audience string, expirationMinutes int) (SigningContext, error) {
	if issuer == "" {
		return SigningContext{}, fmt.Errorf("%w: token issuer is required", common.ErrConfiguration)
	}
	if audience == "" {
		return SigningContext{}, fmt.Errorf("%w: token audience is required", common.ErrConfiguration)
	}
	if expirationMinutes <= 0 {
		return SigningContext{}, fmt.Errorf("%w: token expiration must be positive, got %d", common.ErrConfiguration, expirationMinutes)
	}
	return SigningContext{
		Issuer:     issuer,
		Audience:   audience,
		Expiration: time.Duration(expirationMinutes) * time.Minute,
	}, nil
}

// Status is the outcome of a validation.
type Status int

const (
	StatusInvalid Status = iota
	StatusValid
)

func (s Status) String() string {
	if s == StatusValid {
		return "valid"
	}
	return "invalid"
}

// Result is returned by ValidateToken. Subject and ExpiresAt are only set
// when Status is StatusValid.
type Result struct {
	Status    Status
	Subject   string
	ExpiresAt time.Time
}

// Valid reports whether the token passed every check.
func (r Result) Valid() bool { return r.Status == StatusValid }

var invalid = Result{Status: StatusInvalid}

// Option configures a TokenService.
type Option func(*TokenService)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// TokenService creates and validates session tokens. It is immutable after
// construction and safe for concurrent use.
type TokenService struct {
	sc  SigningContext
	now func() time.Time
}

// NewTokenService returns a TokenService bound to sc.
func NewTokenService(sc SigningContext, opts ...Option) *TokenService {
	s := &TokenService{sc: sc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateToken issues a token for username signed with a key derived from
// secret. It is valid from now until now plus the configured expiration.
func (s *TokenService) CreateToken(username, secret string) (string, error) {
	if username == "" || secret == "" {
		return "", fmt.Errorf("%w: username and secret are required", common.ErrInvalidInput)
	}

	key, err := deriveKey(secret)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(key)

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    s.sc.Issuer,
		Audience:  jwt.ClaimStrings{s.sc.Audience},
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sc.Expiration)),
	})

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks signature, issuer, audience and the validity window
// of tokenString against a key derived from secret. Any failure, including
// a malformed token, yields StatusInvalid with no further detail.
func (s *TokenService) ValidateToken(tokenString, secret string) Result {
	if tokenString == "" || secret == "" {
		return invalid
	}

	key, err := deriveKey(secret)
	if err != nil {
		return invalid
	}
	defer common.WipeByteArray(key)

	claims := &jwt.RegisteredClaims{}
	token, err := s.parser().ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return invalid
	}

	if claims.Subject == "" || claims.NotBefore == nil || !claims.ExpiresAt.After(claims.NotBefore.Time) {
		return invalid
	}
	// WithAudience accepts any matching entry; the audience must be exactly ours.
	if len(claims.Audience) != 1 {
		return invalid
	}

	return Result{Status: StatusValid, Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
}

// ClaimedSubject returns the subject of tokenString without verifying it.
// Callers use it only to look up the secret to validate against; it proves
// nothing on its own.
func (s *TokenService) ClaimedSubject(tokenString string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func (s *TokenService) parser() *jwt.Parser {
	return jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.sc.Issuer),
		jwt.WithAudience(s.sc.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
}

func deriveKey(secret string) ([]byte, error) {
	key := make([]byte, keySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
