// Package urlparser decomposes arbitrary input strings into normalized
// legacy URL records. A spec-compliant WHATWG parser does the heavy lifting;
// a preprocessing rewrite chain and a postprocessing reconciliation pass
// reproduce the legacy field semantics the delegate normalizes away.
package urlparser

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
	"github.com/rs/zerolog"

	"github.com/urlkit/legacyurl/internal/querystring"
	"github.com/urlkit/legacyurl/internal/urlformat"
)

// Options are the two independent parse modes.
type Options struct {
	// ParseQuery decodes the search tail into an ordered key/value mapping
	// instead of carrying it as a raw string.
	ParseQuery bool
	// SlashesDenoteHost treats a leading "//" as introducing an authority
	// even when the remainder does not resemble a host.
	SlashesDenoteHost bool
}

// Parser turns raw strings into legacy URL records. It holds no per-call
// state and is safe for concurrent use.
type Parser struct {
	opts     Options
	delegate whatwg.Parser
	log      zerolog.Logger
}

// NewParser creates a parser with the given options. The logger is used for
// debug traces only; parsing itself never fails.
func NewParser(opts Options, logger zerolog.Logger) *Parser {
	return &Parser{
		opts:     opts,
		delegate: whatwg.NewParser(),
		log:      logger.With().Str("component", "URLParser").Logger(),
	}
}

// Parse decomposes rawURL into a Record. It never fails: input the delegate
// rejects even against the fallback base degrades to a record carrying at
// most the protocol text.
func (p *Parser) Parse(rawURL string) *Record {
	pre := preprocess(rawURL)
	del := p.resolve(pre)
	if del.outcome == abandoned {
		return p.degenerate(pre)
	}
	return p.build(p.reconcile(pre, del))
}

// degenerate is the terminal branch of the fallback chain: only the
// explicit protocol (when one was recorded) survives.
func (p *Parser) degenerate(pre preprocessed) *Record {
	rec := &Record{}
	if pre.protocol != "" {
		rec.Protocol = NewField(pre.protocol)
		rec.Href = NewField(pre.protocol)
	}
	return rec
}

// build assembles the final record: derives href and path, attaches the
// query in the requested shape, and maps empty strings to absent fields.
// Host and hostname keep the empty string on file: URLs, where it means "no
// authority" rather than "no authority parsed".
func (p *Parser) build(b recordBuilder) *Record {
	var href string
	if b.hrefDirect {
		// The serializer would reintroduce a scheme and authority that
		// never existed for a restored protocol-relative path.
		href = b.pathname + b.search + b.hash
	} else {
		href = urlformat.Format(urlformat.Fields{
			Protocol: b.protocol,
			Slashes:  b.slashes,
			Auth:     b.auth,
			Host:     b.host,
			Pathname: b.pathname,
			Search:   b.search,
			Hash:     b.hash,
		})
	}

	rec := &Record{Slashes: b.slashes}
	rec.Protocol = presentIfNonEmpty(b.protocol)
	rec.Auth = presentIfNonEmpty(b.auth)
	if strings.HasPrefix(href, "file:") {
		rec.Host = NewField(b.host)
		rec.Hostname = NewField(b.hostname)
	} else {
		rec.Host = presentIfNonEmpty(b.host)
		rec.Hostname = presentIfNonEmpty(b.hostname)
	}
	rec.Port = presentIfNonEmpty(b.port)
	rec.Pathname = presentIfNonEmpty(b.pathname)
	rec.Search = presentIfNonEmpty(b.search)
	rec.Hash = presentIfNonEmpty(b.hash)

	if p.opts.ParseQuery {
		rec.QueryValues = querystring.Parse(strings.TrimPrefix(b.search, "?"))
	} else if rec.Search.Valid {
		rec.Query = NewField(strings.TrimPrefix(b.search, "?"))
	}

	rec.Path = presentIfNonEmpty(b.pathname + b.search)
	rec.Href = presentIfNonEmpty(href)
	return rec
}

func presentIfNonEmpty(s string) Field {
	if s == "" {
		return Field{}
	}
	return NewField(s)
}
