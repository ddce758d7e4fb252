// Package legacyurl decomposes arbitrary strings into the field set of the
// legacy Node-style url.parse record while delegating the actual parsing to
// a spec-compliant WHATWG engine. Legacy quirks are preserved: lone "?" and
// "#" separators, backslash normalization, protocol-less and slash-less
// inputs, IPv6 literals, file: authority suppression, and explicit
// default-port retention.
//
// Parsing never fails; malformed input degrades to a partial record.
package legacyurl

import (
	"github.com/rs/zerolog"

	"github.com/urlkit/legacyurl/internal/urlparser"
)

type (
	// Record is the decomposed form of an input string.
	Record = urlparser.Record
	// Field is a record component distinguishing absent from empty.
	Field = urlparser.Field
	// Options are the two independent parse modes.
	Options = urlparser.Options
)

var defaultParser = urlparser.NewParser(Options{}, zerolog.Nop())

// Parse decomposes rawURL with default options.
func Parse(rawURL string) *Record {
	return defaultParser.Parse(rawURL)
}

// ParseWithOptions decomposes rawURL honoring opts.
func ParseWithOptions(rawURL string, opts Options) *Record {
	return urlparser.NewParser(opts, zerolog.Nop()).Parse(rawURL)
}
