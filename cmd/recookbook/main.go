package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/recook-book/internal/cli"
	"github.com/MKhiriev/recook-book/models"
)

// Set via ldflags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCommand(&cli.RootOptions{
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	})
	code := cli.Execute(ctx, root)

	stop()
	os.Exit(code)
}
