// Command mcmaps keeps pinned map documents for Minecraft worlds.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alicerunsonfedora/mcmaps/cgo/cubiomes"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/config/file"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/pkgdir"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/sqlite"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/watcher"
	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/cli"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
	"github.com/alicerunsonfedora/mcmaps/internal/core/services"
	"github.com/alicerunsonfedora/mcmaps/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	// Log to stderr; stdout carries command output and the MCP stdio transport.
	logger.SetOutput(os.Stderr)

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcmaps: loading config: %v\n", err)
		return 1
	}
	settings := services.NewSettingsService(configStore)

	packages := pkgdir.NewStore("")
	deps := &cli.Services{
		Search:    services.NewSearchService(cubiomes.NewFactory()),
		Documents: services.NewDocumentService(packages),
		Settings:  settings,
		Oracle:    "cubiomes",
	}
	if !cubiomes.Available() {
		deps.Oracle = "none (built without the cubiomes tag)"
	}

	var library *sqlite.Store
	deps.OpenLibrary = func() (driving.DocumentService, error) {
		store, err := sqlite.NewStore(settings.LibraryPath())
		if err != nil {
			return nil, err
		}
		library = store
		return services.NewDocumentService(store), nil
	}
	defer func() {
		if library != nil {
			if err := library.Close(); err != nil {
				logger.Error("closing library: %v", err)
			}
		}
	}()

	fsWatcher, err := watcher.NewFSNotifyWatcher(packages.Resolve)
	if err != nil {
		logger.Warn("file watching unavailable: %v", err)
	} else {
		defer fsWatcher.Close()
		deps.Watch = services.NewWatchService(fsWatcher, services.DefaultWatchInterval)
	}

	cli.SetServices(deps)
	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
