package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/config"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/service"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

// Backend is an opened store and the services built on it.
type Backend struct {
	Services *service.Services
	Close    func() error
}

// OpenFunc opens the Backend a command runs against.
type OpenFunc func(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Backend, error)

// OpenBackend opens the configured storage and wires the services with
// time-ordered ids and the system clock.
func OpenBackend(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Backend, error) {
	st, err := store.NewStorages(ctx, cfg.Storage, log.GetChildLogger("store"))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	svcs, err := service.NewServices(st, cfg, buildInfo, utils.NewIDGenerator(), utils.SystemClock{}, log)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &Backend{Services: svcs, Close: st.Close}, nil
}

// commandEnv is what a one-shot command runs against.
type commandEnv struct {
	cmd      *cobra.Command
	cfg      *config.StructuredConfig
	svcs     *service.Services
	app      *client.App
	renderer *textRenderer
	logger   *logger.Logger
}

// loadConfig resolves the configuration from the flags of cmd.
func loadConfig(cmd *cobra.Command) (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func commandLogger(opts *RootOptions, cfg *config.StructuredConfig) *logger.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return logger.NewFileLogger("cli", cfg.Log.File, cfg.Log.Level)
}

// run opens the backend, builds an App rendering into a textRenderer and
// calls fn. The backend is closed when fn returns. One-shot commands do not
// simulate loading or redirect delays.
func run(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, env *commandEnv) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := commandLogger(opts, cfg).GetChildLogger(cmd.CommandPath())

	backend, err := opts.Open(ctx, cfg, opts.BuildInfo, log)
	if err != nil {
		log.Err(err).Str("func", "cli.run").Msg("failed to open backend")
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			log.Err(cerr).Str("func", "cli.run").Msg("failed to close backend")
		}
	}()

	renderer := newTextRenderer(cmd.ErrOrStderr(), log)
	env := &commandEnv{
		cmd:      cmd,
		cfg:      cfg,
		svcs:     backend.Services,
		app:      client.NewApp(backend.Services, renderer, validators.NewFormValidator(), config.Pacing{}, log),
		renderer: renderer,
		logger:   log,
	}

	return fn(ctx, env)
}

// enter visits page the way the interactive client does. When the visit is
// sent to the login page, the command logs in with creds and follows the
// destination the login returns.
func (e *commandEnv) enter(ctx context.Context, page models.Page, creds *credentials) error {
	decision, err := e.app.LoadPage(ctx, page)
	if err != nil {
		return err
	}
	if decision.Granted() {
		return nil
	}
	if decision.Target != models.PageLogin {
		return fmt.Errorf("%w: %s redirects to %s", ErrAccessDenied, page, decision.Target)
	}
	if creds == nil || creds.Email == "" {
		return ErrLoginRequired
	}

	password, err := creds.password(e.cmd.InOrStdin(), e.cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	res, err := e.app.SubmitLogin(ctx, models.LoginForm{Email: creds.Email, Password: password})
	if err != nil {
		return err
	}

	decision, err = e.app.LoadPage(ctx, res.Destination)
	if err != nil {
		return err
	}
	if !decision.Granted() || res.Destination != page {
		return fmt.Errorf("%w: %s", ErrAccessDenied, page)
	}

	e.logger.Debug().Str("page", string(page)).Str("email", creds.Email).Msg("logged in")
	return nil
}
