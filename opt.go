package apiclient

import (
	// Packages
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	logrus "github.com/sirupsen/logrus"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	debug     bool
	log       logrus.FieldLogger
	tracer    trace.Tracer
	transport Transport
	pool      []transport.Opt
	apis      []Node
}

// ClientOpt represents a function that modifies the client options
type ClientOpt func(*opts) error

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...ClientOpt) (*opts, error) {
	var o opts

	// Apply the options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}

	// A custom transport and pool options are mutually exclusive
	if o.transport != nil && len(o.pool) > 0 {
		return nil, httpresponse.ErrBadRequest.With("OptTransport and OptPool cannot be combined")
	}

	// Set the default logger, raised to debug level when debugging
	if o.log == nil {
		log := logrus.New()
		if o.debug {
			log.SetLevel(logrus.DebugLevel)
		}
		o.log = log
	}

	// Return success
	return &o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptDebug enables debug output for every request dispatched by the client.
func OptDebug() ClientOpt {
	return func(o *opts) error {
		o.debug = true
		return nil
	}
}

// OptLogger sets the logger used for debug output.
func OptLogger(log logrus.FieldLogger) ClientOpt {
	return func(o *opts) error {
		if log == nil {
			return httpresponse.ErrBadRequest.With("OptLogger: missing logger")
		}
		o.log = log
		return nil
	}
}

// OptTracer sets the tracer used to create a span for each request.
func OptTracer(tracer trace.Tracer) ClientOpt {
	return func(o *opts) error {
		o.tracer = tracer
		return nil
	}
}

// OptTransport sets a custom transport, replacing the default pool.
func OptTransport(t Transport) ClientOpt {
	return func(o *opts) error {
		if t == nil {
			return httpresponse.ErrBadRequest.With("OptTransport: missing transport")
		}
		o.transport = t
		return nil
	}
}

// OptPool sets options for the default transport pool, which are
// forwarded verbatim to the pool constructor.
func OptPool(opt ...transport.Opt) ClientOpt {
	return func(o *opts) error {
		o.pool = append(o.pool, opt...)
		return nil
	}
}

// OptAPIs sets the top-level API groups which are bound to the client
// at construction time.
func OptAPIs(nodes ...Node) ClientOpt {
	return func(o *opts) error {
		o.apis = append(o.apis, nodes...)
		return nil
	}
}
