package services

import (
	"context"

	"gatortrips/internal/models/db_models"
	"gatortrips/internal/repositories"
	"gatortrips/pkg/utils"
)

type CollaboratorLookupInterface interface {
	// Resolve matches a free-text identifier against accounts: exact
	// display-name match first, exact email match as fallback. A miss is a
	// normal outcome and returns (nil, nil).
	Resolve(ctx context.Context, identifier string) (*db_models.Account, error)
}

type CollaboratorLookup struct {
	accountRepo repositories.AccountRepository
}

func NewCollaboratorLookup(accountRepo repositories.AccountRepository) CollaboratorLookupInterface {
	return &CollaboratorLookup{
		accountRepo: accountRepo,
	}
}

func (l *CollaboratorLookup) Resolve(ctx context.Context, identifier string) (*db_models.Account, error) {
	if identifier == "" {
		return nil, utils.ErrInvalidInput
	}

	account, err := l.accountRepo.FindByDisplayName(ctx, identifier)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		return account, nil
	}

	account, err = l.accountRepo.FindByEmail(ctx, identifier)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}
