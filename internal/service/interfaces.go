package service

import (
	"context"
	"io"

	"github.com/MKhiriev/recook-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountDirectory owns the list of registered accounts kept in the durable
// tier. The demo account is recreated whenever the list is found empty.
type AccountDirectory interface {
	// ListAccounts returns every account in creation order.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// FindByEmail looks an account up by its exact, case-sensitive email.
	// Returns ErrAccountNotFound when there is none.
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// CreateAccount assigns an id and a creation time to acc and appends it.
	// Returns ErrDuplicateEmail, leaving the list untouched, when the email
	// is already registered.
	CreateAccount(ctx context.Context, acc models.Account) (models.Account, error)

	// VerifyCredentials returns the account whose email and password both
	// match exactly, or ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, email, password string) (models.Account, error)
}

// Authenticator keeps the session of the running process and decides which
// pages it may see.
type Authenticator interface {
	// Login verifies the credentials and stores the account as the current
	// user. The result names the page to go to next: the remembered return
	// target, which is consumed, or the splash page.
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	// Logout forgets the current user.
	Logout(ctx context.Context) error

	// CurrentSession re-reads the session from storage on every call.
	CurrentSession(ctx context.Context) (models.Session, error)

	// Gate decides whether page may be shown. Anonymous visits to restricted
	// pages remember the page as the return target and redirect to login.
	// Authenticated visits to login or signup redirect home.
	Gate(ctx context.Context, page models.Page) (models.AccessDecision, error)

	// PendingReturnTarget reports the remembered return target without
	// consuming it.
	PendingReturnTarget(ctx context.Context) (models.Page, bool, error)
}

// RecipeCatalog owns the recipe collection and the local upvote record.
type RecipeCatalog interface {
	// List returns the recipes in stored order, newest submissions first.
	List(ctx context.Context) ([]models.Recipe, error)

	// Get looks a recipe up by id.
	Get(ctx context.Context, id int64) (models.Recipe, bool, error)

	// Add stores r in front of the collection with a fresh id, zero upvotes
	// and the current time. The input is trusted.
	Add(ctx context.Context, r models.Recipe) (models.Recipe, error)

	// Delete removes the recipe and its upvote mark. Unknown ids are ignored.
	Delete(ctx context.Context, id int64) error

	// ToggleUpvote flips the upvote mark of the recipe and adjusts its count.
	// It returns the updated recipe and whether it is now upvoted. Unknown
	// ids are a no-op returning a zero Recipe.
	ToggleUpvote(ctx context.Context, id int64) (models.Recipe, bool, error)

	UpvotedIDs(ctx context.Context) ([]int64, error)
	IsUpvoted(ctx context.Context, id int64) (bool, error)

	// Featured returns the n most upvoted recipes, ties in stored order.
	// n <= 0 selects the configured default.
	Featured(ctx context.Context, n int) ([]models.Recipe, error)

	// Filter applies search, category and sort to the stored collection.
	Filter(ctx context.Context, f models.RecipeFilter) ([]models.Recipe, error)

	// SeedSamples stores the sample recipes when the collection is empty,
	// unless seeding is disabled. It reports whether anything was stored.
	SeedSamples(ctx context.Context) (bool, error)

	// Export writes the collection as YAML.
	Export(ctx context.Context, w io.Writer) error

	// Import reads YAML recipes and prepends them, returning how many were
	// added.
	Import(ctx context.Context, r io.Reader) (int, error)
}

// AppInfoService exposes version information to the UI.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
