// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, session authentication and
// password rotation on top of the password and auth packages.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/dmitrijs2005/passlocker/internal/dbx"
	"github.com/dmitrijs2005/passlocker/internal/password"
	"github.com/dmitrijs2005/passlocker/internal/server/auth"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"github.com/dmitrijs2005/passlocker/internal/server/models"
	"github.com/dmitrijs2005/passlocker/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with a freshly salted password hash
// - Login: verify credentials and mint a session token
// - Authenticate: resolve a session token to a Principal
// - ChangePassword: rotate the hash, revoking earlier tokens
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	protector   *password.Protector
	tokens      *auth.TokenService
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, p *password.Protector, ts *auth.TokenService) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		protector:   p,
		tokens:      ts,
	}
}

// Register creates a new user. The password is hashed here, never stored
// as given.
func (s *UserService) Register(ctx context.Context, username, email, plaintext string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrInvalidInput)
	}

	salt, hash, err := s.protector.HashPassword(plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.User{UserName: username, Email: email, PasswordSalt: salt, PasswordHash: hash}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and, on success, returns a session token
// signed with the user's current password hash. Unknown users and wrong
// passwords are both ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, plaintext string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerification(plaintext)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.protector.VerifyPassword(plaintext, user.PasswordSalt, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.CreateToken(user.UserName, user.PasswordHash)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate resolves a bearer token to the user it was issued for. Every
// token problem is reported as ErrInvalidToken; store failures as
// ErrorInternal.
func (s *UserService) Authenticate(ctx context.Context, token string) (authctx.Principal, error) {
	username, ok := s.tokens.ClaimedSubject(token)
	if !ok {
		return authctx.Principal{}, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return authctx.Principal{}, common.ErrInvalidToken
		}
		return authctx.Principal{}, common.ErrorInternal
	}

	res := s.tokens.ValidateToken(token, user.PasswordHash)
	if !res.Valid() || res.Subject != user.UserName {
		return authctx.Principal{}, common.ErrInvalidToken
	}

	return authctx.Principal{UserID: user.ID, UserName: user.UserName, ExpiresAt: res.ExpiresAt}, nil
}

// ChangePassword replaces the user's salt and hash after checking the
// current password. Tokens issued before the change stop validating.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	salt, hash, err := s.protector.HashPassword(next)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return common.ErrorInternal
		}
		if !s.protector.VerifyPassword(current, user.PasswordSalt, user.PasswordHash) {
			return common.ErrorUnauthorized
		}

		if err := repo.UpdatePassword(ctx, userID, salt, hash); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return common.ErrorInternal
		}
		return nil
	})
}

// GetUser returns the user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// DeleteUser removes the user. Outstanding tokens fail validation because
// their subject no longer resolves.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.repomanager.Users(s.db).Delete(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return common.ErrorInternal
	}
	return nil
}

// inTx runs fn in a database transaction. Without a database (in-memory
// store) fn runs directly.
func (s *UserService) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// burnVerification spends the same KDF work as a real check so a missing
// user is not distinguishable by response time.
func (s *UserService) burnVerification(plaintext string) {
	_, _, _ = s.protector.HashPassword(plaintext)
}
