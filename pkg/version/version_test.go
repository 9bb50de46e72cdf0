package version_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-apiclient/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_Version(t *testing.T) {
	assert := assert.New(t)
	assert.NotEmpty(version.Version())
}

func Test_UserAgent(t *testing.T) {
	assert := assert.New(t)
	agent := version.UserAgent("apicall")
	assert.True(strings.HasPrefix(agent, "apicall/"))
}

func Test_JSON(t *testing.T) {
	assert := assert.New(t)

	var metadata map[string]string
	assert.NoError(json.Unmarshal(version.JSON("apicall"), &metadata))
	assert.Equal("apicall", metadata["name"])
	assert.NotEmpty(metadata["version"])
	assert.NotEmpty(metadata["compiler"])
}
