package apiclient

import (
	"context"
	"net/http"

	// Packages
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the base type for a group of related endpoint methods. Concrete
// groups embed API and delegate their calls to the client they are bound to.
// A group never owns the client; the back-reference is assigned exactly once
// by Bind and is treated as immutable afterwards.
type API struct {
	client  *Client
	baseURL *string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the client this group is bound to, or nil when unbound.
func (api *API) Client() *Client {
	return api.client
}

// SetBaseURL pins this group's calls to a base URL other than the client
// default. The override is injected per-call when delegating, so the client
// itself is never mutated.
func (api *API) SetBaseURL(base string) {
	api.baseURL = types.StringPtr(base)
}

// Children returns the nested API groups of this node. The base type has
// none; composite groups override this to enumerate theirs.
func (api *API) Children() []Node {
	return nil
}

// Get performs a GET request through the bound client.
func (api *API) Get(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return api.request(ctx, http.MethodGet, url, opt)
}

// Post performs a POST request through the bound client.
func (api *API) Post(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return api.request(ctx, http.MethodPost, url, opt)
}

// Put performs a PUT request through the bound client.
func (api *API) Put(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return api.request(ctx, http.MethodPut, url, opt)
}

// Patch performs a PATCH request through the bound client.
func (api *API) Patch(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return api.request(ctx, http.MethodPatch, url, opt)
}

// Delete performs a DELETE request through the bound client.
func (api *API) Delete(ctx context.Context, url string, opt ...RequestOpt) (*transport.Response, error) {
	return api.request(ctx, http.MethodDelete, url, opt)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (api *API) bind(client *Client) {
	if api.client == nil {
		api.client = client
	}
}

func (api *API) request(ctx context.Context, method, url string, opt []RequestOpt) (*transport.Response, error) {
	if api.client == nil {
		return nil, httpresponse.ErrInternalError.With("api group is not bound to a client")
	}

	// The group's own base URL override takes precedence over any
	// caller-supplied one
	if api.baseURL != nil {
		opt = append(opt, WithBaseURL(types.PtrString(api.baseURL)))
	}
	return api.client.Request(ctx, method, url, opt...)
}
