package store

import (
	"github.com/openshelf/catalog/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository        UserRepository
	BookRepository        BookRepository
	ReservationRepository ReservationRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		BookRepository:        NewBookRepository(db, logger),
		ReservationRepository: NewReservationRepository(db, logger),
	}
}
