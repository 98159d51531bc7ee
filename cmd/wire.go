package cmd

import (
	"strings"

	"reelfetch/internal/browser"
	"reelfetch/internal/config"
	"reelfetch/internal/httputil"
	"reelfetch/internal/launcher"
	"reelfetch/internal/link"
	"reelfetch/internal/listing"
	"reelfetch/internal/pipeline"
	"reelfetch/internal/resolve"
	"reelfetch/internal/solver"
)

// app bundles the pieces a command needs.
type app struct {
	fetcher  *listing.Fetcher
	pipeline *pipeline.Pipeline
	registry *resolve.Registry
	opener   launcher.Launcher
}

// newRegistry registers one resolver per known host. The redirector host
// gets the engine selected in the configuration.
func newRegistry(c *config.Config) *resolve.Registry {
	client := httputil.NewClient()
	reg := resolve.NewRegistry()

	if strings.EqualFold(c.Engine, config.EngineBrowser) {
		engine := browser.NewPlaywright(c.Headless, c.BrowserTimeout())
		reg.Register(link.Redirector, resolve.NewBrowser(engine, logger))
	} else {
		s := solver.New(c.SolverURL, c.SolverTimeout())
		reg.Register(link.Redirector, resolve.NewRedirector(client, s, logger))
	}

	reg.Register(link.GenericHost, resolve.NewGenericHost(client, c.StaticOrigin, logger))
	return reg
}

func newApp(c *config.Config) *app {
	fetcher := listing.New(c.BaseURL, httputil.NewClient(), logger)
	reg := newRegistry(c)

	return &app{
		fetcher:  fetcher,
		pipeline: pipeline.New(fetcher, reg),
		registry: reg,
		opener:   launcher.New(c.Launcher),
	}
}
