package urlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess_BackslashNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"path backslashes become slashes", `http:\\example.com\p\q`, "http://example.com/p/q"},
		{"query backslashes untouched", `http://example.com/p?a\b`, `http://example.com/p?a\b`},
		{"fragment backslashes untouched", `http://example.com/p#a\b`, `http://example.com/p#a\b`},
		{"backslash before query normalized", `http://e.com\x?a\b`, `http://e.com/x?a\b`},
		{"whitespace trimmed", "  http://example.com/  ", "http://example.com/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocess(tt.input).url)
		})
	}
}

func TestPreprocess_IPv6TrailingSlash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare bracketed literal", "http://[::1]", "http://[::1]/"},
		{"bracketed literal with port", "http://[::1]:8080", "http://[::1]:8080/"},
		{"existing path untouched", "http://[::1]/x", "http://[::1]/x"},
		{"mapped address", "https://[::ffff:127.0.0.1]", "https://[::ffff:127.0.0.1]/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocess(tt.input).url)
		})
	}
}

func TestPreprocess_SchemeRewrites(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want preprocessed
	}{
		{
			name: "two-slash slashed scheme passes through",
			in:   "http://example.com/p",
			want: preprocessed{url: "http://example.com/p", schemeMatched: true, slashes: true},
		},
		{
			name: "slash-less slashed scheme drops prefix",
			in:   "http:example.com/p",
			want: preprocessed{url: "example.com/p", protocol: "http:", schemeMatched: true},
		},
		{
			name: "one slash collapses to root path",
			in:   "http:/path",
			want: preprocessed{url: "/path", protocol: "http:", schemeMatched: true},
		},
		{
			name: "three slashes collapse to root path",
			in:   "http:///path",
			want: preprocessed{url: "/path", protocol: "http:", schemeMatched: true, slashes: true},
		},
		{
			name: "scheme case lowered for slashed schemes",
			in:   "HTTP:example.com",
			want: preprocessed{url: "example.com", protocol: "http:", schemeMatched: true},
		},
		{
			name: "opaque scheme gets synthetic authority",
			in:   "mailto:alice@example.com",
			want: preprocessed{url: "//alice@example.com", protocol: "mailto:", opaqueProtocol: true, schemeMatched: true},
		},
		{
			name: "opaque scheme keeps written case",
			in:   "FOO:bar",
			want: preprocessed{url: "//bar", protocol: "FOO:", opaqueProtocol: true, schemeMatched: true},
		},
		{
			name: "javascript payload untouched",
			in:   "javascript:alert(1)",
			want: preprocessed{url: "javascript:alert(1)"},
		},
		{
			name: "no scheme",
			in:   "example.com/foo",
			want: preprocessed{url: "example.com/foo"},
		},
		{
			name: "protocol-relative input",
			in:   "//example.com/foo",
			want: preprocessed{url: "//example.com/foo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocess(tt.in))
		})
	}
}

func TestPreprocess_PortSuffix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"default http port captured", "http://example.com:80/", ":80"},
		{"default https port captured", "https://example.com:443/x", ":443"},
		{"custom port captured", "http://example.com:8080/", ":8080"},
		{"port at end of input", "http://example.com:80", ":80"},
		{"port before query", "http://example.com:80?a=1", ":80"},
		{"no port", "http://example.com/", ""},
		{"digits must terminate authority", "http://example.com:80abc", ""},
		{"non-http scheme ignored", "ftp://example.com:21/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocess(tt.in).portSuffix)
		})
	}
}
