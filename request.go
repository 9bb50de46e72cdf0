package apiclient

import (
	"net/http"
	"net/url"
	"time"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type requestOpts struct {
	fields  url.Values
	timeout *time.Duration
	headers http.Header
	retries *int
	baseURL *string
}

// RequestOpt represents a function that modifies a single request
type RequestOpt func(*requestOpts) error

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	// DefaultTimeout is applied when a request does not set its own timeout
	DefaultTimeout = 30 * time.Second

	// DefaultRetries is applied when a request does not set its own retry count
	DefaultRetries = 3
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyRequestOpts(opt []RequestOpt) (*requestOpts, error) {
	var o requestOpts

	// Apply the options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}

	// Inject the defaults where not set
	if o.timeout == nil {
		timeout := DefaultTimeout
		o.timeout = &timeout
	}
	if o.headers == nil {
		o.headers = make(http.Header)
	}
	if o.retries == nil {
		retries := DefaultRetries
		o.retries = &retries
	}

	// Return success
	return &o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithFields sets query fields for the request. Fields are only consumed
// for POST and PUT requests, where they are query-encoded and appended to
// the request URL rather than sent as a request body.
func WithFields(fields url.Values) RequestOpt {
	return func(o *requestOpts) error {
		o.fields = fields
		return nil
	}
}

// WithTimeout sets the timeout for the request.
func WithTimeout(timeout time.Duration) RequestOpt {
	return func(o *requestOpts) error {
		if timeout <= 0 {
			return httpresponse.ErrBadRequest.Withf("WithTimeout: invalid timeout %v", timeout)
		}
		o.timeout = &timeout
		return nil
	}
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOpt {
	return func(o *requestOpts) error {
		if key == "" {
			return httpresponse.ErrBadRequest.With("WithHeader: missing key")
		}
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Set(key, value)
		return nil
	}
}

// WithRetries sets the number of transport-level retries for the request.
func WithRetries(retries int) RequestOpt {
	return func(o *requestOpts) error {
		if retries < 0 {
			return httpresponse.ErrBadRequest.Withf("WithRetries: invalid retry count %d", retries)
		}
		o.retries = &retries
		return nil
	}
}

// WithBaseURL sets a one-shot base URL override for this request only.
// An empty value leaves the client's own base URL in effect.
func WithBaseURL(base string) RequestOpt {
	return func(o *requestOpts) error {
		if base != "" {
			o.baseURL = &base
		}
		return nil
	}
}
