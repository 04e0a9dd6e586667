package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/recook-book/internal/config"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/service"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

// Event names attached to the context of every App call.
const (
	EventLoadPage      = "LoadPage"
	EventSubmitSignup  = "SubmitSignup"
	EventSubmitLogin   = "SubmitLogin"
	EventRequestLogout = "RequestLogout"
	EventSubmitRecipe  = "SubmitRecipe"
	EventRequestDelete = "RequestDelete"
	EventToggleUpvote  = "RequestToggleUpvote"
	EventRequestFilter = "RequestFilter"
)

// App handles user events. Every method is synchronous: when it returns, the
// renderer has received the updated auth state and listings.
type App struct {
	auth      service.Authenticator
	accounts  service.AccountDirectory
	recipes   service.RecipeCatalog
	renderer  Renderer
	validator validators.Validator
	pacing    config.Pacing

	// mu serializes events so that listings are never rendered out of order.
	mu         sync.Mutex
	lastFilter models.RecipeFilter

	logger *logger.Logger
}

func NewApp(svcs *service.Services, renderer Renderer, validator validators.Validator, pacing config.Pacing, logger *logger.Logger) *App {
	return &App{
		auth:      svcs.Auth,
		accounts:  svcs.Accounts,
		recipes:   svcs.Recipes,
		renderer:  renderer,
		validator: validator,
		pacing:    pacing,
		logger:    logger,
	}
}

// LoadPage gates page and, when access is granted, renders the current auth
// state and listings. A redirect only shows a message; the caller is
// expected to call AwaitRedirect and then load decision.Target.
func (a *App) LoadPage(ctx context.Context, page models.Page) (models.AccessDecision, error) {
	ctx = a.eventContext(ctx, EventLoadPage)

	a.mu.Lock()
	defer a.mu.Unlock()

	decision, err := a.auth.Gate(ctx, page)
	if err != nil {
		return models.AccessDecision{}, a.fail(ctx, err, MsgStorageFailure)
	}

	if !decision.Granted() {
		logger.FromContext(ctx).Debug().Str("page", string(page)).Str("target", string(decision.Target)).Msg("page redirected")
		switch decision.Target {
		case models.PageLogin:
			a.renderer.ShowMessage(MsgLoginRequired, models.SeverityInfo)
		case models.PageHome:
			a.renderer.ShowMessage(MsgAlreadyLoggedIn, models.SeverityInfo)
		}
		return decision, nil
	}

	seeded, err := a.recipes.SeedSamples(ctx)
	if err != nil {
		return models.AccessDecision{}, a.fail(ctx, err, MsgStorageFailure)
	}
	if seeded {
		logger.FromContext(ctx).Info().Str("page", string(page)).Msg("empty catalog reseeded")
	}

	if err = a.refresh(ctx); err != nil {
		return models.AccessDecision{}, err
	}

	return decision, nil
}

// AwaitRedirect waits the configured redirect delay or until ctx is done.
func (a *App) AwaitRedirect(ctx context.Context) error {
	return wait(ctx, a.pacing.RedirectDelay)
}

// SubmitSignup validates form and creates the account. The new user is not
// logged in.
func (a *App) SubmitSignup(ctx context.Context, form models.SignupForm) (models.Account, error) {
	ctx = a.eventContext(ctx, EventSubmitSignup)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.Account{}, a.fail(ctx, err, UserMessage(err))
	}
	if err := wait(ctx, a.pacing.LoadingDelay); err != nil {
		return models.Account{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	acc, err := a.accounts.CreateAccount(ctx, models.Account{
		FirstName:  strings.TrimSpace(form.FirstName),
		LastName:   strings.TrimSpace(form.LastName),
		Email:      form.Email,
		Password:   form.Password,
		Newsletter: form.Newsletter,
	})
	if err != nil {
		msg := MsgSignupFailed
		if errors.Is(err, service.ErrDuplicateEmail) {
			msg = MsgDuplicateEmail
		}
		return models.Account{}, a.fail(ctx, err, msg)
	}
	a.renderer.ShowMessage(MsgSignupSucceeded, models.SeveritySuccess)

	return acc, a.refresh(ctx)
}

// SubmitLogin validates form and logs in. The result names the page to
// continue to.
func (a *App) SubmitLogin(ctx context.Context, form models.LoginForm) (models.LoginResult, error) {
	ctx = a.eventContext(ctx, EventSubmitLogin)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.LoginResult{}, a.fail(ctx, err, UserMessage(err))
	}
	if err := wait(ctx, a.pacing.LoadingDelay); err != nil {
		return models.LoginResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := a.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		return models.LoginResult{}, a.fail(ctx, err, UserMessage(err))
	}
	a.renderer.ShowMessage(MsgLoginSucceeded, models.SeveritySuccess)

	return res, a.refresh(ctx)
}

func (a *App) RequestLogout(ctx context.Context) error {
	ctx = a.eventContext(ctx, EventRequestLogout)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.auth.Logout(ctx); err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	a.renderer.ShowMessage(MsgLoggedOut, models.SeverityInfo)

	return a.refresh(ctx)
}

// SubmitRecipe validates form and adds the recipe in front of the catalog.
func (a *App) SubmitRecipe(ctx context.Context, form models.RecipeForm) (models.Recipe, error) {
	ctx = a.eventContext(ctx, EventSubmitRecipe)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.Recipe{}, a.fail(ctx, err, UserMessage(err))
	}
	prepTime, err := validators.ParsePrepTime(form.PrepTime)
	if err != nil {
		return models.Recipe{}, a.fail(ctx, err, UserMessage(err))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	recipe, err := a.recipes.Add(ctx, models.Recipe{
		Title:                 strings.TrimSpace(form.Title),
		Category:              models.Category(form.Category),
		PrepTime:              prepTime,
		LeftoverIngredients:   form.LeftoverIngredients,
		AdditionalIngredients: form.AdditionalIngredients,
		Instructions:          form.Instructions,
		Tips:                  form.Tips,
		Author:                strings.TrimSpace(form.Author),
	})
	if err != nil {
		return models.Recipe{}, a.fail(ctx, err, MsgStorageFailure)
	}
	a.renderer.ShowMessage(MsgRecipeSubmitted, models.SeveritySuccess)

	return recipe, a.refresh(ctx)
}

// RequestDelete removes the recipe. Confirmation is up to the front end.
// Unknown ids only refresh the listings.
func (a *App) RequestDelete(ctx context.Context, id int64) error {
	ctx = a.eventContext(ctx, EventRequestDelete)

	a.mu.Lock()
	defer a.mu.Unlock()

	_, found, err := a.recipes.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	if found {
		if err = a.recipes.Delete(ctx, id); err != nil {
			return a.fail(ctx, err, MsgStorageFailure)
		}
		a.renderer.ShowMessage(MsgRecipeDeleted, models.SeveritySuccess)
	}

	return a.refresh(ctx)
}

// RequestToggleUpvote flips the local upvote of the recipe and reports
// whether it is now upvoted.
func (a *App) RequestToggleUpvote(ctx context.Context, id int64) (bool, error) {
	ctx = a.eventContext(ctx, EventToggleUpvote)

	a.mu.Lock()
	defer a.mu.Unlock()

	_, upvoted, err := a.recipes.ToggleUpvote(ctx, id)
	if err != nil {
		return false, a.fail(ctx, err, MsgStorageFailure)
	}

	return upvoted, a.refresh(ctx)
}

// RequestFilter remembers f and renders the filtered listing. Later
// mutations recompute the filtered listing with the remembered filter.
func (a *App) RequestFilter(ctx context.Context, f models.RecipeFilter) error {
	ctx = a.eventContext(ctx, EventRequestFilter)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastFilter = f
	upvoted, err := a.upvotedSet(ctx)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	if err = a.renderFiltered(ctx, upvoted); err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}

	return nil
}

// LastFilter returns the filter applied to the filtered listing.
func (a *App) LastFilter() models.RecipeFilter {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastFilter
}

// refresh recomputes the auth state and every derived listing. Callers
// hold a.mu.
func (a *App) refresh(ctx context.Context) error {
	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	a.renderer.RenderAuthState(session)

	upvoted, err := a.upvotedSet(ctx)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}

	all, err := a.recipes.List(ctx)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	a.renderer.Render(models.RecipeListing{View: models.ViewAllRecipes, Recipes: all, Upvoted: upvoted})

	featured, err := a.recipes.Featured(ctx, 0)
	if err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}
	a.renderer.Render(models.RecipeListing{View: models.ViewFeatured, Recipes: featured, Upvoted: upvoted})

	if err = a.renderFiltered(ctx, upvoted); err != nil {
		return a.fail(ctx, err, MsgStorageFailure)
	}

	return nil
}

func (a *App) renderFiltered(ctx context.Context, upvoted map[int64]bool) error {
	filtered, err := a.recipes.Filter(ctx, a.lastFilter)
	if err != nil {
		return err
	}
	a.renderer.Render(models.RecipeListing{
		View:    models.ViewFiltered,
		Recipes: filtered,
		Upvoted: upvoted,
		Filter:  a.lastFilter,
	})

	return nil
}

func (a *App) upvotedSet(ctx context.Context) (map[int64]bool, error) {
	ids, err := a.recipes.UpvotedIDs(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}

// fail logs err, shows msg as an error notification and returns err.
// Validation and credential errors are expected and logged at debug level.
func (a *App) fail(ctx context.Context, err error, msg string) error {
	log := logger.FromContext(ctx)
	event, _ := utils.GetEventFromContext(ctx)

	if errors.Is(err, validators.ErrValidation) || errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrDuplicateEmail) {
		log.Debug().Err(err).Str("event", event).Msg("event rejected")
	} else {
		log.Err(err).Str("event", event).Msg("event failed")
	}
	a.renderer.ShowMessage(msg, models.SeverityError)

	return err
}

func (a *App) eventContext(ctx context.Context, event string) context.Context {
	ctx = utils.WithEvent(ctx, event)
	return a.logger.GetChildLogger("client").WithContext(ctx)
}

// wait blocks for d or until ctx is done. Zero or negative d returns at once.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait %s: %w", d, ctx.Err())
	case <-timer.C:
		return nil
	}
}
