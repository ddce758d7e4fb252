package urlparser

import (
	"regexp"
	"strings"
)

// Schemes whose authority is conventionally introduced by "//".
var slashedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"ftp":    true,
	"gopher": true,
	"file":   true,
}

var (
	schemeRe        = regexp.MustCompile(`(?s)^([a-zA-Z][a-zA-Z0-9+.-]*):(/{0,3})(.*)$`)
	javascriptRe    = regexp.MustCompile(`(?i)^javascript:`)
	protocolSlashRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	ipv6AuthorityRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://\[[0-9a-fA-F:.]+\](:\d+)?$`)
	explicitPortRe  = regexp.MustCompile(`^(?i:https?)://[^/?#]*(:\d+)(?:[/?#]|$)`)
)

// preprocessed carries the rewritten input plus the side metadata the
// postprocessor needs to undo delegate-parser conveniences afterwards.
type preprocessed struct {
	url            string // string handed to the delegate parser
	protocol       string // explicit protocol token including ":", when recorded
	opaqueProtocol bool   // recorded protocol is not one of the slashed schemes
	schemeMatched  bool   // a scheme prefix was matched (path repair applies)
	slashes        bool   // "//" followed the scheme in the input
	portSuffix     string // literal ":<port>" captured from an http(s) authority
}

// preprocess rewrites raw into a form the delegate parser consumes reliably.
// The step order is significant: backslash normalization must not touch the
// query/fragment, the IPv6 fixup must see the original authority, and the
// slashes test must run before the scheme rewrites mutate the prefix.
func preprocess(raw string) preprocessed {
	s := strings.TrimSpace(raw)

	// Backslashes act as path separators only before the query/fragment.
	cut := strings.IndexAny(s, "?#")
	if cut < 0 {
		cut = len(s)
	}
	s = strings.ReplaceAll(s[:cut], `\`, "/") + s[cut:]

	// A bracketed literal with no trailing path would be read as a path
	// component; a trailing slash makes the delegate treat it as a host.
	if ipv6AuthorityRe.MatchString(s) && !strings.HasSuffix(s, "/") {
		s += "/"
	}

	var p preprocessed
	p.slashes = protocolSlashRe.MatchString(s)

	// javascript: payloads are left untouched so the rewrite cannot corrupt
	// script text after the colon.
	if !javascriptRe.MatchString(s) {
		if m := schemeRe.FindStringSubmatch(s); m != nil {
			scheme, slashRun, rest := m[1], m[2], m[3]
			p.schemeMatched = true
			switch {
			case !slashedSchemes[strings.ToLower(scheme)]:
				// Opaque scheme: the delegate cannot represent an unknown
				// scheme with authority syntax, so carry the protocol on the
				// side and let a synthetic "//" expose any host.
				p.protocol = scheme + ":"
				p.opaqueProtocol = true
				s = "//" + rest
			case slashRun == "":
				// Slash-less form of a slashed scheme: protocol-relative.
				p.protocol = strings.ToLower(scheme) + ":"
				s = rest
			case len(slashRun) != 2:
				// 1 and 3 slashes collapse to a single corrective case,
				// replicating the legacy parser's slash handling.
				p.protocol = strings.ToLower(scheme) + ":"
				s = "/" + rest
			}
		}
	}

	// The delegate drops a port equal to the scheme default; keep the
	// literal suffix so the postprocessor can restore it.
	if m := explicitPortRe.FindStringSubmatch(s); m != nil {
		p.portSuffix = m[1]
	}

	p.url = s
	return p
}
