/*
Package transport implements the connection-pooled HTTP transport used by the
client. The pool wraps a net/http transport with per-request retry and
timeout, and is safe for concurrent use by any number of callers.
*/
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	// Packages
	version "github.com/mutablelogic/go-apiclient/pkg/version"
	backoff "github.com/cenkalti/backoff/v4"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	otelhttp "go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Request is a single HTTP request to be performed by the pool. The timeout
// bounds the whole call including retries, and the retry count is the number
// of additional attempts after the first.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	Timeout time.Duration
	Retries int
}

// Response is the outcome of a request: the status code, the response
// headers and the fully-read body.
type Response struct {
	Status int
	Header http.Header
	Data   []byte
}

// Pool is a connection-pooled HTTP transport.
type Pool struct {
	opts
	client *http.Client
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a transport pool. The zero set of options yields a pool over
// the default net/http transport with a derived User-Agent.
func New(opt ...Opt) (*Pool, error) {
	self := new(Pool)

	// Apply options
	if opts, err := applyOpts(opt...); err != nil {
		return nil, err
	} else {
		self.opts = *opts
	}

	// Set the default user agent
	if self.userAgent == "" {
		self.userAgent = version.UserAgent("go-apiclient")
	}

	// Clone the default transport and apply the pool sizing and TLS options
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.MaxConnsPerHost = self.maxConns
	tr.MaxIdleConns = self.maxIdleConns
	tr.IdleConnTimeout = self.idleTimeout
	if self.tlsConfig != nil {
		tr.TLSClientConfig = self.tlsConfig.Clone()
	}
	if self.insecure {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = new(tls.Config)
		}
		tr.TLSClientConfig.InsecureSkipVerify = true
	}

	// Instrument the round-tripper
	var rt http.RoundTripper = tr
	if self.telemetry {
		rt = otelhttp.NewTransport(tr)
	}
	self.client = &http.Client{Transport: rt}

	// Return success
	return self, nil
}

// Close releases any idle connections held by the pool.
func (pool *Pool) Close() error {
	pool.client.CloseIdleConnections()
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs the request. Transport errors and server errors are retried
// with exponential backoff up to the request's retry count; client errors
// are not retried. The final response is returned whatever its status code,
// and classification is left to the caller.
func (pool *Pool) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	// Retry policy for this request
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = pool.retryInterval
	var rsp *Response
	err := backoff.Retry(func() error {
		rsp = nil

		// Apply the rate limit across attempts
		if pool.limiter != nil {
			if err := pool.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		// Perform a single attempt
		r, err := pool.do(ctx, req)
		if err != nil {
			return err
		}
		rsp = r

		// Retry server errors, return anything else
		if r.Status >= http.StatusInternalServerError {
			return httpresponse.Err(r.Status).With(http.StatusText(r.Status))
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(req.Retries)), ctx))

	// When the retries are exhausted on a server error, the response still
	// carries the status and body for the caller to classify
	if rsp != nil {
		return rsp, nil
	}
	return nil, err
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs a single attempt, fully reading the body so that the
// connection is released back to the pool.
func (pool *Pool) do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	r, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			r.Header.Add(key, value)
		}
	}
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", pool.userAgent)
	}

	// Perform the request
	rsp, err := pool.client.Do(r)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	// Read the body
	data, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, err
	}

	// Return success
	return &Response{
		Status: rsp.StatusCode,
		Header: rsp.Header,
		Data:   data,
	}, nil
}
