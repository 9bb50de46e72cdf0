package apiclient

import (
	"context"

	// Packages
	transport "github.com/mutablelogic/go-apiclient/pkg/transport"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Group issues several requests concurrently through a single client. The
// client itself remains synchronous; the group is a caller-side convenience.
type Group struct {
	client *Client
	limit  int
}

// GroupRequest is a single request to be performed by a group.
type GroupRequest struct {
	Method string
	URL    string
	Opts   []RequestOpt
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewGroup returns a group which performs requests through the client, with
// at most limit requests in flight. A limit of zero or less means no limit.
func NewGroup(client *Client, limit int) (*Group, error) {
	if client == nil {
		return nil, httpresponse.ErrBadRequest.With("NewGroup: missing client")
	}
	return &Group{client: client, limit: limit}, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs the requests concurrently and returns the responses in request
// order. The first error cancels the remaining requests and is returned.
func (group *Group) Do(ctx context.Context, reqs ...GroupRequest) ([]*transport.Response, error) {
	g, ctx := errgroup.WithContext(ctx)
	if group.limit > 0 {
		g.SetLimit(group.limit)
	}

	// Dispatch the requests
	rsps := make([]*transport.Response, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			rsp, err := group.client.Request(ctx, req.Method, req.URL, req.Opts...)
			if err != nil {
				return err
			}
			rsps[i] = rsp
			return nil
		})
	}

	// Wait for completion
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rsps, nil
}
