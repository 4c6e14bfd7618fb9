package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passlocker/internal/dbx"
	"github.com/dmitrijs2005/passlocker/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves a single shared in-memory store and
// ignores the DBTX it is handed.
type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}
