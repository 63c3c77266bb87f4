package services

import (
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Wallet = NewWalletService(repos.WalletRepo, cfg.MonthlyBudget)
	container.Group = NewGroupService(repos.GroupRepo, WithStrictAvailableFilter(cfg.StrictAvailableFilter))
	container.Discovery = NewDiscoveryService(repos.UserRepo)

	return container
}
