package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at wiring time.
type RepositoryProvider struct {
	WalletRepo WalletRepositoryFacade
	GroupRepo  GroupRepositoryFacade
	UserRepo   UserRepositoryFacade
}
