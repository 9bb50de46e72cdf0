package apiclient

import (
	"errors"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ClientError represents a response from the remote service with a status
// code outside the 2xx range. It carries the decoded response body, the
// resolved request URL and the status code.
type ClientError struct {
	Status int
	URL    string
	Body   string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Err returns the *ClientError wrapped in err, or nil if the error did not
// originate from a non-2xx response.
func Err(err error) *ClientError {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return nil
}

func (e *ClientError) Error() string {
	return e.Body
}
