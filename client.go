package apiclient

import (
	"context"
	"net/http"
	"strings"

	// Packages
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	logrus "github.com/sirupsen/logrus"
	codes "go.opentelemetry.io/otel/codes"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the root of an API tree. It owns the transport pool and the
// request defaults, and every bound API group delegates its calls here.
type Client struct {
	opts
	baseURL string
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the service at baseURL. Any trailing slashes on
// the base URL are stripped once here, and the base URL is never mutated
// afterwards. API groups supplied with OptAPIs are bound to the client
// before New returns.
func New(baseURL string, opt ...ClientOpt) (*Client, error) {
	self := new(Client)
	if baseURL == "" {
		return nil, httpresponse.ErrBadRequest.With("missing base URL")
	}
	self.baseURL = strings.TrimRight(baseURL, "/")

	// Apply options
	if opts, err := applyOpts(opt...); err != nil {
		return nil, err
	} else {
		self.opts = *opts
	}

	// Create the default transport pool when no custom transport is set
	if self.transport == nil {
		pool, err := transport.New(self.pool...)
		if err != nil {
			return nil, err
		}
		self.transport = pool
	}

	// Bind the API tree to this client
	Bind(self, self.apis...)

	// Return success
	return self, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// BaseURL returns the normalized base URL of the client.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// Get performs a GET request.
func (client *Client) Get(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return client.Request(ctx, http.MethodGet, url, opt...)
}

// Post performs a POST request.
func (client *Client) Post(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return client.Request(ctx, http.MethodPost, url, opt...)
}

// Put performs a PUT request.
func (client *Client) Put(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return client.Request(ctx, http.MethodPut, url, opt...)
}

// Patch performs a PATCH request.
func (client *Client) Patch(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return client.Request(ctx, http.MethodPatch, url, opt...)
}

// Delete performs a DELETE request.
func (client *Client) Delete(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return client.Request(ctx, http.MethodDelete, url, opt...)
}

// Request resolves the URL and the request defaults, performs the request
// through the transport pool and classifies the response. A response with a
// status code in the 2xx range is returned undecoded. Any other status code
// returns a *ClientError carrying the decoded body and the resolved URL.
func (client *Client) Request(ctx context.Context, method, url string, opt ...RequestOpt) (*transport.Response, error) {
	opts, err := applyRequestOpts(opt)
	if err != nil {
		return nil, err
	}

	// Body-bearing methods consume fields as a query string, not a body
	if method == http.MethodPost || method == http.MethodPut {
		if len(opts.fields) > 0 {
			url = url + "?" + opts.fields.Encode()
		}
	}

	// Resolve the URL against the chosen base, unless it is absolute
	base := client.baseURL
	if opts.baseURL != nil {
		base = *opts.baseURL
	}
	requrl := url
	if !strings.HasPrefix(url, "http") {
		requrl = base + url
	}

	if client.debug {
		client.log.WithFields(logrus.Fields{
			"method":  method,
			"url":     requrl,
			"timeout": *opts.timeout,
			"retries": *opts.retries,
			"headers": opts.headers,
		}).Debug("request")
	}

	// Span around the dispatch
	var result error
	ctx, endFunc := client.startSpan(ctx, method)
	defer func() { endFunc(result) }()

	// Perform the request
	rsp, err := client.transport.Do(ctx, &transport.Request{
		Method:  method,
		URL:     requrl,
		Header:  opts.headers,
		Timeout: *opts.timeout,
		Retries: *opts.retries,
	})
	if err != nil {
		result = err
		return nil, err
	}

	// The body is logged before classification, on success and failure alike
	if client.debug {
		client.log.WithFields(logrus.Fields{
			"status": rsp.Status,
			"url":    requrl,
		}).Debug(string(rsp.Data))
	}

	// Classify the response
	if rsp.Status >= http.StatusOK && rsp.Status < http.StatusMultipleChoices {
		return rsp, nil
	}
	result = &ClientError{Status: rsp.Status, URL: requrl, Body: string(rsp.Data)}
	return nil, result
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// startSpan begins a span when a tracer is set, and returns a function which
// ends the span, recording any error.
func (client *Client) startSpan(ctx context.Context, name string) (context.Context, func(error)) {
	if client.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, span := client.tracer.Start(ctx, name)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
