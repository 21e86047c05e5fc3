package service

import (
	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/store"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AuthService
	BookService
	ReservationService
}

// NewServices wires the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg, logger),
		BookService:        NewBookService(storages.BookRepository, logger),
		ReservationService: NewReservationService(storages.BookRepository, storages.ReservationRepository, logger),
	}
}
