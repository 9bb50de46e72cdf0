package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Packages
	apiclient "github.com/mutablelogic/go-apiclient"
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Endpoint string `env:"APICLIENT_ENDPOINT" default:"http://localhost/" help:"Service endpoint"`
	Debug    bool   `help:"Enable debug output"`
	Insecure bool   `help:"Skip TLS certificate verification"`

	ctx    context.Context
	cancel context.CancelFunc
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewApp(app Globals) *Globals {
	// Create the context
	// This context is cancelled when the process receives a SIGINT or SIGTERM
	app.ctx, app.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Return the app
	return &app
}

func (app *Globals) Close() error {
	app.cancel()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (app *Globals) Context() context.Context {
	return app.ctx
}

// Client builds an API client from the global flags.
func (app *Globals) Client() (*apiclient.Client, error) {
	opts := []apiclient.ClientOpt{}
	if app.Debug {
		opts = append(opts, apiclient.OptDebug())
	}
	if app.Insecure {
		opts = append(opts, apiclient.OptPool(transport.WithInsecureSkipVerify()))
	}
	return apiclient.New(app.Endpoint, opts...)
}
