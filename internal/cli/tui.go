package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/tui"
	"github.com/MKhiriev/recook-book/internal/validators"
)

// NewTUICommand creates the tui command.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

// runTUI opens the backend and hands the terminal to the Bubble Tea program.
// The UI owns stdout, so logs always go to the log file.
func runTUI(cmd *cobra.Command, opts *RootOptions) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := commandLogger(opts, cfg)

	backend, err := opts.Open(ctx, cfg, opts.BuildInfo, log)
	if err != nil {
		log.Err(err).Str("func", "cli.runTUI").Msg("failed to open backend")
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			log.Err(cerr).Str("func", "cli.runTUI").Msg("failed to close backend")
		}
	}()

	bridge := tui.NewBridge(tui.DefaultBridgeBuffer)
	app := client.NewApp(backend.Services, bridge, validators.NewFormValidator(), cfg.Pacing, log)

	var ui client.Client = tui.New(app, bridge, backend.Services.AppInfo.GetBuildInfo(ctx), log.GetChildLogger("tui"))
	return ui.Run(ctx)
}
