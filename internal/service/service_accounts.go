package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/models"
)

// Demo account credentials, recreated whenever the directory is empty.
const (
	DemoAccountID       int64 = 1
	DemoAccountEmail          = "demo@recookbook.com"
	DemoAccountPassword       = "Demo123!"
)

type accountDirectory struct {
	store store.PersistentStore
	ids   utils.IDSource
	clock utils.Clock

	// mu serializes read-modify-write of the accounts key.
	mu sync.Mutex

	logger *logger.Logger
}

func NewAccountDirectory(st store.PersistentStore, ids utils.IDSource, clock utils.Clock, logger *logger.Logger) AccountDirectory {
	return &accountDirectory{
		store:  st,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

func (d *accountDirectory) ListAccounts(ctx context.Context) ([]models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.load(ctx)
}

func (d *accountDirectory) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, acc := range accounts {
		if acc.Email == email {
			return acc, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (d *accountDirectory) CreateAccount(ctx context.Context, acc models.Account) (models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, existing := range accounts {
		if existing.Email == acc.Email {
			return models.Account{}, ErrDuplicateEmail
		}
	}

	acc.ID = d.ids.NextID()
	acc.CreatedAt = d.clock.Now()
	accounts = append(accounts, acc)

	if err = d.store.Write(ctx, store.TierDurable, store.KeyAccounts, accounts); err != nil {
		d.logger.Err(err).Str("func", "*accountDirectory.CreateAccount").Msg("failed to save accounts")
		return models.Account{}, fmt.Errorf("save accounts: %w", err)
	}
	d.logger.Info().Int64("account_id", acc.ID).Int("total", len(accounts)).Msg("account created")

	return acc, nil
}

func (d *accountDirectory) VerifyCredentials(ctx context.Context, email, password string) (models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, acc := range accounts {
		if acc.Email == email && acc.Password == password {
			return acc, nil
		}
	}

	return models.Account{}, ErrInvalidCredentials
}

// load reads the account list, seeding the demo account when it is empty.
// Callers hold d.mu.
func (d *accountDirectory) load(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	found, err := d.store.Read(ctx, store.TierDurable, store.KeyAccounts, &accounts)
	if err != nil {
		d.logger.Err(err).Str("func", "*accountDirectory.load").Msg("failed to read accounts")
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	if !found {
		accounts = nil
	}

	if len(accounts) > 0 {
		return accounts, nil
	}

	accounts = []models.Account{d.demoAccount()}
	if err = d.store.Write(ctx, store.TierDurable, store.KeyAccounts, accounts); err != nil {
		d.logger.Err(err).Str("func", "*accountDirectory.load").Msg("failed to seed demo account")
		return nil, fmt.Errorf("seed demo account: %w", err)
	}
	d.logger.Info().Str("email", DemoAccountEmail).Msg("demo account created")

	return accounts, nil
}

func (d *accountDirectory) demoAccount() models.Account {
	return models.Account{
		ID:         DemoAccountID,
		FirstName:  "Demo",
		LastName:   "User",
		Email:      DemoAccountEmail,
		Password:   DemoAccountPassword,
		Newsletter: true,
		CreatedAt:  d.clock.Now(),
	}
}
