package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/models"
)

type authenticator struct {
	store    store.PersistentStore
	accounts AccountDirectory
	public   map[models.Page]bool

	// mu keeps the session and the return target consistent with each other.
	mu sync.Mutex

	logger *logger.Logger
}

// NewAuthenticator returns an Authenticator that lets anonymous users see
// publicPages only. With no pages given, models.DefaultPublicPages apply.
func NewAuthenticator(st store.PersistentStore, accounts AccountDirectory, logger *logger.Logger, publicPages ...models.Page) Authenticator {
	if len(publicPages) == 0 {
		publicPages = models.DefaultPublicPages
	}

	public := make(map[models.Page]bool, len(publicPages))
	for _, p := range publicPages {
		public[p] = true
	}

	return &authenticator{
		store:    st,
		accounts: accounts,
		public:   public,
		logger:   logger,
	}
}

func (a *authenticator) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	acc, err := a.accounts.VerifyCredentials(ctx, email, password)
	if err != nil {
		a.logger.Debug().Str("func", "*authenticator.Login").Err(err).Msg("login rejected")
		return models.LoginResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err = a.store.Write(ctx, store.TierSession, store.KeyCurrentUser, acc); err != nil {
		a.logger.Err(err).Str("func", "*authenticator.Login").Msg("failed to store session")
		return models.LoginResult{}, fmt.Errorf("store session: %w", err)
	}

	destination := models.PageSplash
	target, ok, err := a.readPending(ctx)
	if err != nil {
		return models.LoginResult{}, err
	}
	if ok {
		destination = target
		if err = a.store.Remove(ctx, store.TierSession, store.KeyPendingReturnTarget); err != nil {
			return models.LoginResult{}, fmt.Errorf("clear return target: %w", err)
		}
	}
	a.logger.Info().Int64("account_id", acc.ID).Str("destination", string(destination)).Msg("user logged in")

	return models.LoginResult{
		Session:     models.Session{User: &acc},
		Destination: destination,
	}, nil
}

func (a *authenticator) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Remove(ctx, store.TierSession, store.KeyCurrentUser); err != nil {
		a.logger.Err(err).Str("func", "*authenticator.Logout").Msg("failed to remove session")
		return fmt.Errorf("remove session: %w", err)
	}
	a.logger.Info().Msg("user logged out")

	return nil
}

func (a *authenticator) CurrentSession(ctx context.Context) (models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.readSession(ctx)
}

func (a *authenticator) Gate(ctx context.Context, page models.Page) (models.AccessDecision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, err := a.readSession(ctx)
	if err != nil {
		return models.AccessDecision{}, err
	}

	switch {
	case !session.Authenticated() && !a.public[page]:
		if err = a.store.Write(ctx, store.TierSession, store.KeyPendingReturnTarget, page); err != nil {
			return models.AccessDecision{}, fmt.Errorf("store return target: %w", err)
		}
		a.logger.Debug().Str("page", string(page)).Msg("access denied, redirecting to login")
		return models.RedirectTo(models.PageLogin), nil
	case session.Authenticated() && page.IsPreAuth():
		return models.RedirectTo(models.PageHome), nil
	default:
		return models.Grant(), nil
	}
}

func (a *authenticator) PendingReturnTarget(ctx context.Context) (models.Page, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.readPending(ctx)
}

func (a *authenticator) readSession(ctx context.Context) (models.Session, error) {
	var acc models.Account
	found, err := a.store.Read(ctx, store.TierSession, store.KeyCurrentUser, &acc)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return models.Session{}, nil
	}

	return models.Session{User: &acc}, nil
}

func (a *authenticator) readPending(ctx context.Context) (models.Page, bool, error) {
	var page models.Page
	found, err := a.store.Read(ctx, store.TierSession, store.KeyPendingReturnTarget, &page)
	if err != nil {
		return "", false, fmt.Errorf("read return target: %w", err)
	}
	if !found || page == "" {
		return "", false, nil
	}

	return page, true, nil
}
