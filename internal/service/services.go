package service

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/MKhiriev/recook-book/internal/config"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/models"
)

// Services groups the domain services handed to the client controller.
type Services struct {
	Accounts AccountDirectory
	Auth     Authenticator
	Recipes  RecipeCatalog
	AppInfo  AppInfoService
}

// NewServices wires every service to st. ids and clock are injected so that
// tests can make identifiers and timestamps deterministic.
func NewServices(st store.PersistentStore, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, ids utils.IDSource, clock utils.Clock, log *logger.Logger) (*Services, error) {
	locale, err := language.Parse(cfg.App.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, cfg.App.Locale, err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, log.GetChildLogger("app-info"))
	if err != nil {
		return nil, err
	}

	accounts := NewAccountDirectory(st, ids, clock, log.GetChildLogger("accounts"))
	catalog := NewRecipeCatalog(st, ids, clock, CatalogOptions{
		Locale:            locale,
		FeaturedCount:     cfg.App.FeaturedCount,
		SkipSampleRecipes: cfg.Storage.SkipSampleRecipes,
	}, log.GetChildLogger("catalog"))

	return &Services{
		Accounts: accounts,
		Auth:     NewAuthenticator(st, accounts, log.GetChildLogger("auth")),
		Recipes:  catalog,
		AppInfo:  appInfo,
	}, nil
}
