package app

import (
	"context"
	"fmt"

	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/audit"
	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/catalog"
	"github.com/nfrund/sevahub/internal/config"
	"github.com/nfrund/sevahub/internal/pubsub"
	"github.com/nfrund/sevahub/internal/rendering"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Dependencies holds the core services that are required by the application's modules.
// It is resolved once from the injector at startup.
type Dependencies struct {
	Config    config.Provider
	Sessions  *session.CookieStore
	API       *apiclient.Client
	Fetcher   bootstrap.Fetcher
	Catalog   catalog.Source
	Bridge    *pubsub.WatermillBridge
	Publisher pubsub.Publisher
	Recorder  *audit.Recorder
	Renderer  *rendering.UniversalRenderer
}

// NewInjector registers the application's core services. fs is where the
// optional catalog file is read from.
func NewInjector(cfg config.Provider, fs afero.Fs) *do.RootScope {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue[afero.Fs](i, fs)
	do.ProvideValue(i, session.NewCookieStore())
	do.ProvideValue(i, rendering.NewUniversalRenderer())
	do.ProvideValue(i, pubsub.NewWatermillBridge())
	do.ProvideValue(i, audit.NewRecorder(nil))

	do.Provide(i, func(i do.Injector) (*apiclient.Client, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return apiclient.New(cfg.GetAPIBaseURL(), cfg.GetAPITimeout()), nil
	})
	do.Provide(i, func(i do.Injector) (bootstrap.Fetcher, error) {
		return do.Invoke[*apiclient.Client](i)
	})
	do.Provide(i, func(i do.Injector) (pubsub.Publisher, error) {
		return do.Invoke[*pubsub.WatermillBridge](i)
	})
	do.Provide(i, newCatalog)

	return i
}

// newCatalog serves the bundled records unless CATALOG_PATH names a file.
func newCatalog(i do.Injector) (catalog.Source, error) {
	cfg := do.MustInvoke[config.Provider](i)
	path := cfg.GetCatalogPath()
	if path == "" {
		return catalog.Static(), nil
	}

	src, err := catalog.NewFileSource(do.MustInvoke[afero.Fs](i), path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return src, nil
}

// Resolve builds every core service and returns them together.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[config.Provider](i); err != nil {
		return deps, err
	}
	if deps.Catalog, err = do.Invoke[catalog.Source](i); err != nil {
		return deps, err
	}
	if deps.API, err = do.Invoke[*apiclient.Client](i); err != nil {
		return deps, err
	}
	deps.Sessions = do.MustInvoke[*session.CookieStore](i)
	deps.Fetcher = do.MustInvoke[bootstrap.Fetcher](i)
	deps.Bridge = do.MustInvoke[*pubsub.WatermillBridge](i)
	deps.Publisher = do.MustInvoke[pubsub.Publisher](i)
	deps.Recorder = do.MustInvoke[*audit.Recorder](i)
	deps.Renderer = do.MustInvoke[*rendering.UniversalRenderer](i)
	return deps, nil
}

// StartBackground starts the outcome recorder and, when enabled, the
// catalog file watcher. Both stop when ctx is canceled.
func StartBackground(ctx context.Context, deps Dependencies) error {
	if err := deps.Recorder.Start(ctx, deps.Bridge); err != nil {
		return fmt.Errorf("start audit recorder: %w", err)
	}

	src, ok := deps.Catalog.(*catalog.FileSource)
	if !ok || !deps.Config.GetCatalogWatch() {
		return nil
	}
	return catalog.Watch(ctx, src)
}
