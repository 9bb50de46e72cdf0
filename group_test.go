package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	apiclient "github.com/mutablelogic/go-apiclient"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////////////
// GROUP TESTS

func Test_Group_Do(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(err)

	group, err := apiclient.NewGroup(client, 2)
	require.NoError(err)

	rsps, err := group.Do(context.Background(),
		apiclient.GroupRequest{Method: http.MethodGet, URL: "/a"},
		apiclient.GroupRequest{Method: http.MethodGet, URL: "/b"},
		apiclient.GroupRequest{Method: http.MethodGet, URL: "/c"},
	)
	require.NoError(err)
	require.Len(rsps, 3)

	// Responses come back in request order
	assert.Equal("/a", string(rsps[0].Data))
	assert.Equal("/b", string(rsps[1].Data))
	assert.Equal("/c", string(rsps[2].Data))
}

func Test_Group_Error(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(err)

	group, err := apiclient.NewGroup(client, 0)
	require.NoError(err)

	rsps, err := group.Do(context.Background(),
		apiclient.GroupRequest{Method: http.MethodGet, URL: "/good"},
		apiclient.GroupRequest{Method: http.MethodGet, URL: "/bad"},
	)
	assert.Error(err)
	assert.Nil(rsps)
	if clientErr := apiclient.Err(err); assert.NotNil(clientErr) {
		assert.Equal(http.StatusBadRequest, clientErr.Status)
	}
}

func Test_Group_MissingClient(t *testing.T) {
	assert := assert.New(t)

	group, err := apiclient.NewGroup(nil, 0)
	assert.Error(err)
	assert.Nil(group)
}
