package transport

import (
	"crypto/tls"
	"time"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	rate "golang.org/x/time/rate"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	maxConns      int
	maxIdleConns  int
	idleTimeout   time.Duration
	retryInterval time.Duration
	tlsConfig     *tls.Config
	insecure      bool
	userAgent     string
	limiter       *rate.Limiter
	telemetry     bool
}

// Opt represents a function that modifies the pool options
type Opt func(*opts) error

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	defaultIdleTimeout   = 90 * time.Second
	defaultRetryInterval = 500 * time.Millisecond
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...Opt) (*opts, error) {
	// Set defaults
	o := opts{
		idleTimeout:   defaultIdleTimeout,
		retryInterval: defaultRetryInterval,
	}

	// Apply the options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}

	// Return success
	return &o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithMaxConns limits the number of connections per host. Zero means no
// limit.
func WithMaxConns(n int) Opt {
	return func(o *opts) error {
		if n < 0 {
			return httpresponse.ErrBadRequest.Withf("WithMaxConns: invalid count %d", n)
		}
		o.maxConns = n
		return nil
	}
}

// WithMaxIdleConns limits the number of idle connections kept in the pool.
func WithMaxIdleConns(n int) Opt {
	return func(o *opts) error {
		if n < 0 {
			return httpresponse.ErrBadRequest.Withf("WithMaxIdleConns: invalid count %d", n)
		}
		o.maxIdleConns = n
		return nil
	}
}

// WithIdleTimeout sets how long an idle connection is kept before closing.
func WithIdleTimeout(d time.Duration) Opt {
	return func(o *opts) error {
		if d <= 0 {
			return httpresponse.ErrBadRequest.Withf("WithIdleTimeout: invalid timeout %v", d)
		}
		o.idleTimeout = d
		return nil
	}
}

// WithRetryInterval sets the initial backoff interval between retries.
func WithRetryInterval(d time.Duration) Opt {
	return func(o *opts) error {
		if d <= 0 {
			return httpresponse.ErrBadRequest.Withf("WithRetryInterval: invalid interval %v", d)
		}
		o.retryInterval = d
		return nil
	}
}

// WithTLSConfig sets the TLS configuration for the pool.
func WithTLSConfig(config *tls.Config) Opt {
	return func(o *opts) error {
		o.tlsConfig = config
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Opt {
	return func(o *opts) error {
		o.insecure = true
		return nil
	}
}

// WithUserAgent sets the User-Agent header applied to requests which do not
// carry their own.
func WithUserAgent(agent string) Opt {
	return func(o *opts) error {
		if agent == "" {
			return httpresponse.ErrBadRequest.With("WithUserAgent: missing agent")
		}
		o.userAgent = agent
		return nil
	}
}

// WithRateLimit limits requests to n per second across the pool.
func WithRateLimit(n float64) Opt {
	return func(o *opts) error {
		if n <= 0 {
			return httpresponse.ErrBadRequest.Withf("WithRateLimit: invalid rate %v", n)
		}
		o.limiter = rate.NewLimiter(rate.Limit(n), 1)
		return nil
	}
}

// WithTelemetry instruments the pool with OpenTelemetry tracing.
func WithTelemetry() Opt {
	return func(o *opts) error {
		o.telemetry = true
		return nil
	}
}
