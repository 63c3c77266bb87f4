package pgsql

import (
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	walletRepo := newPgxWalletRepository(dbPool)
	groupRepo := newPgxGroupRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WalletRepo: walletRepo,
		GroupRepo:  groupRepo,
		UserRepo:   userRepo,
	}
}
