package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	// Packages
	apiclient "github.com/mutablelogic/go-apiclient"
	version "github.com/mutablelogic/go-apiclient/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RequestCommands struct {
	Get    GetCommand    `cmd:"" group:"REQUEST" help:"Perform a GET request"`
	Post   PostCommand   `cmd:"" group:"REQUEST" help:"Perform a POST request"`
	Put    PutCommand    `cmd:"" group:"REQUEST" help:"Perform a PUT request"`
	Patch  PatchCommand  `cmd:"" group:"REQUEST" help:"Perform a PATCH request"`
	Delete DeleteCommand `cmd:"" group:"REQUEST" help:"Perform a DELETE request"`
}

type requestCommand struct {
	URL     string            `arg:"" name:"url" help:"Request URL, or path relative to the endpoint"`
	Header  map[string]string `short:"H" help:"Request headers"`
	Field   map[string]string `short:"F" help:"Query fields for POST and PUT requests"`
	Timeout time.Duration     `help:"Request timeout"`
	Retries int               `default:"-1" help:"Transport retry count"`
}

type GetCommand struct {
	requestCommand
}

type PostCommand struct {
	requestCommand
}

type PutCommand struct {
	requestCommand
}

type PatchCommand struct {
	requestCommand
}

type DeleteCommand struct {
	requestCommand
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *GetCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodGet)
}

func (cmd *PostCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodPost)
}

func (cmd *PutCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodPut)
}

func (cmd *PatchCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodPatch)
}

func (cmd *DeleteCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodDelete)
}

func (cmd *VersionCommand) Run(app *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *requestCommand) run(app *Globals, method string) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	// Gather the request options
	opts := []apiclient.RequestOpt{}
	for key, value := range cmd.Header {
		opts = append(opts, apiclient.WithHeader(key, value))
	}
	if len(cmd.Field) > 0 {
		fields := make(url.Values, len(cmd.Field))
		for key, value := range cmd.Field {
			fields.Set(key, value)
		}
		opts = append(opts, apiclient.WithFields(fields))
	}
	if cmd.Timeout > 0 {
		opts = append(opts, apiclient.WithTimeout(cmd.Timeout))
	}
	if cmd.Retries >= 0 {
		opts = append(opts, apiclient.WithRetries(cmd.Retries))
	}

	// Perform the request and write the body to stdout
	rsp, err := client.Request(app.Context(), method, cmd.URL, opts...)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(rsp.Data)
	return err
}
