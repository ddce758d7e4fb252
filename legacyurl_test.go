package legacyurl_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlkit/legacyurl"
)

func TestParse(t *testing.T) {
	rec := legacyurl.Parse("http://example.com:80/p?a=1#f")
	require.NotNil(t, rec)
	assert.Equal(t, "http:", rec.Protocol.String)
	assert.True(t, rec.Slashes)
	assert.Equal(t, "example.com:80", rec.Host.String)
	assert.Equal(t, "example.com", rec.Hostname.String)
	assert.Equal(t, "80", rec.Port.String)
	assert.Equal(t, "/p", rec.Pathname.String)
	assert.Equal(t, "?a=1", rec.Search.String)
	assert.Equal(t, "a=1", rec.Query.String)
	assert.Equal(t, "#f", rec.Hash.String)
	assert.Equal(t, "/p?a=1", rec.Path.String)
	assert.Equal(t, "http://example.com:80/p?a=1#f", rec.Href.String)
	assert.Equal(t, rec.Href.String, rec.String())
}

func TestParse_NeverFails(t *testing.T) {
	for _, input := range []string{"", "foo:", "#", "not a url"} {
		assert.NotNil(t, legacyurl.Parse(input), "input %q", input)
	}
}

func TestParseWithOptions_Query(t *testing.T) {
	rec := legacyurl.ParseWithOptions("http://example.com/?a=1&a=2", legacyurl.Options{ParseQuery: true})
	require.NotNil(t, rec.QueryValues)
	assert.Equal(t, []string{"1", "2"}, rec.QueryValues.GetAll("a"))

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"query":{"a":["1","2"]}`)
}

func TestParseWithOptions_SlashesDenoteHost(t *testing.T) {
	rec := legacyurl.ParseWithOptions("//host/path", legacyurl.Options{SlashesDenoteHost: true})
	assert.Equal(t, "host", rec.Host.String)
	assert.Equal(t, "/path", rec.Pathname.String)
}
