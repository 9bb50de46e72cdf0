/*
Package apiclient provides a base framework for building composable HTTP API
clients. A root Client owns a pooled HTTP transport and the request defaults,
and a tree of API groups delegates endpoint calls back to the client it is
bound to. Binding happens once, at construction time, so that every group at
any depth shares the same client reference.
*/
package apiclient

import (
	"context"

	// Packages
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
)

////////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Transport is the connection-pooled HTTP collaborator used to perform the
// actual network requests. The implementation owns connection handling, TLS
// and transport-level retries, and must be safe for concurrent use.
type Transport interface {
	Do(context.Context, *transport.Request) (*transport.Response, error)
}

// Node is implemented by API groups which can be bound to a client. Concrete
// groups embed the API base type, which provides the binding and the request
// helpers, and composite groups override Children to enumerate their nested
// groups.
type Node interface {
	// Children returns the nested API groups of this node, which may
	// include nil entries for optional groups that are not attached.
	Children() []Node

	// Bind the shared client reference to this node
	bind(*Client)
}
