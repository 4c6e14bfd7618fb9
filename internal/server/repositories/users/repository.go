// Package users declares the credential store and its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/passlocker/internal/server/models"
)

// Repository persists user credentials.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// UpdatePassword replaces salt and hash together.
	UpdatePassword(ctx context.Context, id, salt, hash string) error
	Delete(ctx context.Context, id string) error
}
