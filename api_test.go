package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	apiclient "github.com/mutablelogic/go-apiclient"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////////////
// API GROUP TESTS

func Test_API_BaseURLOverride(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	api := new(keysAPI)
	api.SetBaseURL("http://special")
	rec := new(recTransport)
	_, err := apiclient.New("http://h", apiclient.OptTransport(rec), apiclient.OptAPIs(api))
	require.NoError(err)

	// The group's own base wins over the client default
	_, err = api.Get(context.Background(), "/x")
	require.NoError(err)
	assert.Equal([]string{"http://special/x"}, rec.urls)

	// An absolute URL still wins over the group's base
	_, err = api.Get(context.Background(), "http://other/y")
	require.NoError(err)
	assert.Equal("http://other/y", rec.urls[1])
}

func Test_API_Delegation(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	api := new(keysAPI)
	rec := new(recTransport)
	client, err := apiclient.New("http://h", apiclient.OptTransport(rec), apiclient.OptAPIs(api))
	require.NoError(err)
	assert.Same(client, api.Client())

	ctx := context.Background()
	_, err = api.Get(ctx, "/a")
	require.NoError(err)
	_, err = api.Post(ctx, "/b")
	require.NoError(err)
	_, err = api.Put(ctx, "/c")
	require.NoError(err)
	_, err = api.Patch(ctx, "/d")
	require.NoError(err)
	_, err = api.Delete(ctx, "/e")
	require.NoError(err)
	assert.Equal([]string{"http://h/a", "http://h/b", "http://h/c", "http://h/d", "http://h/e"}, rec.urls)
}

func Test_API_Unbound(t *testing.T) {
	assert := assert.New(t)

	api := new(keysAPI)
	_, err := api.Get(context.Background(), "/x")
	assert.Error(err)
	assert.Nil(api.Client())
}

////////////////////////////////////////////////////////////////////////////////
// ERROR TESTS

func Test_ClientError(t *testing.T) {
	assert := assert.New(t)

	err := error(&apiclient.ClientError{Status: http.StatusNotFound, URL: "http://h/x", Body: "missing"})
	assert.Equal("missing", err.Error())

	clientErr := apiclient.Err(err)
	if assert.NotNil(clientErr) {
		assert.Equal(http.StatusNotFound, clientErr.Status)
		assert.Equal("http://h/x", clientErr.URL)
	}

	// Unrelated errors are not client errors
	assert.Nil(apiclient.Err(context.Canceled))
	assert.Nil(apiclient.Err(nil))
}
