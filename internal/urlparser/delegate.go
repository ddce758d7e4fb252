package urlparser

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// Fallback base for inputs the delegate cannot parse as absolute, and the
// host it fabricates for them. The two must stay in sync: after a fallback
// parse, a host equal to the sentinel is delegate-inserted, not real.
const (
	fallbackBaseURL = "http://localhost/"
	sentinelHost    = "localhost"
)

type delegateOutcome int

const (
	parsedDirect delegateOutcome = iota
	parsedWithBase
	abandoned
)

// delegateResult is the tagged outcome of the two-stage parse attempt.
type delegateResult struct {
	url                  *whatwg.Url
	outcome              delegateOutcome
	leadingSlashRestored bool
}

// resolve runs the fallback chain: a direct parse first, then a parse
// against the fallback base. A protocol-relative "//" prefix that does not
// resemble an authority is disguised as a plain path before the retry; the
// postprocessor restores the stripped slash.
func (p *Parser) resolve(pre preprocessed) delegateResult {
	if u, err := p.delegate.Parse(pre.url); err == nil {
		return delegateResult{url: u, outcome: parsedDirect}
	}

	retry := pre.url
	restored := false
	if pre.protocol == "" && !p.opts.SlashesDenoteHost &&
		strings.HasPrefix(retry, "//") && !looksLikeAuthority(retry[2:]) {
		retry = retry[1:]
		restored = true
	}

	u, err := p.delegate.ParseRef(fallbackBaseURL, retry)
	if err != nil {
		p.log.Debug().Str("url", pre.url).Err(err).Msg("Delegate parse abandoned, returning degenerate record")
		return delegateResult{outcome: abandoned}
	}
	return delegateResult{url: u, outcome: parsedWithBase, leadingSlashRestored: restored}
}

// looksLikeAuthority reports whether the text following "//" resembles a
// user-info or host fragment rather than a path segment.
func looksLikeAuthority(s string) bool {
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, ".@")
}
