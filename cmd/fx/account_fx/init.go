package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gatortrips/internal/repositories"
	"gatortrips/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideCollaboratorLookup)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideCollaboratorLookup(accountRepo repositories.AccountRepository) services.CollaboratorLookupInterface {
	return services.NewCollaboratorLookup(accountRepo)
}
