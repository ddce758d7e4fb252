package urlparser

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// recordBuilder accumulates the reconciled field values before the final
// absent-defaulting pass.
type recordBuilder struct {
	protocol   string
	slashes    bool
	auth       string
	host       string
	hostname   string
	port       string
	pathname   string
	search     string
	hash       string
	hrefDirect bool // compose href from pathname+search+hash
}

var (
	backslashEscaper = strings.NewReplacer(`\`, "%5C")
	bracketStripper  = strings.NewReplacer("[", "", "]", "")
)

// reconcile merges the delegate's decomposition with the preprocessor's side
// metadata, undoing delegate conveniences (fabricated authority, placeholder
// base join artifacts, default-port stripping) and restoring legacy quirks
// (lone separators, backslash escaping, path re-escaping).
func (p *Parser) reconcile(pre preprocessed, del delegateResult) recordBuilder {
	u := del.url
	usedBase := del.outcome == parsedWithBase

	b := recordBuilder{
		slashes:    pre.slashes && !del.leadingSlashRestored,
		hrefDirect: del.leadingSlashRestored,
	}

	b.host, b.hostname = u.Host(), u.Hostname()
	if usedBase {
		// A host equal to the fallback base's is fabricated, not parsed.
		if b.host == sentinelHost {
			b.host = ""
		}
		if b.hostname == sentinelHost {
			b.hostname = ""
		}
	}
	b.hostname = bracketStripper.Replace(b.hostname)

	if usedBase {
		b.protocol = pre.protocol
	} else {
		b.protocol = u.Protocol()
	}

	b.search = backslashEscaper.Replace(u.Search())
	if b.search == "" && containsQuery(pre.url) {
		b.search = "?"
	}
	b.hash = backslashEscaper.Replace(u.Hash())
	if b.hash == "" && hasEmptyFragment(pre.url) {
		b.hash = "#"
	}

	b.pathname = u.Pathname()
	switch {
	case pre.schemeMatched:
		b.pathname = decodePath(b.pathname)
	case del.leadingSlashRestored:
		b.pathname = "/" + b.pathname
	}

	if b.protocol == "about:" && b.pathname == "blank" {
		b.protocol = ""
		b.pathname = ""
	}
	// Joining against the fallback base prefixes relative inputs with "/".
	if usedBase && !strings.HasPrefix(pre.url, "/") && b.pathname != "" {
		b.pathname = b.pathname[1:]
	}
	// The synthetic "//" for opaque schemes makes the delegate inject a root
	// path the input never had.
	if pre.opaqueProtocol && !strings.HasSuffix(pre.url, "/") && b.pathname == "/" {
		b.pathname = ""
	}

	b.auth = joinUserinfo(u.Username(), u.Password())

	b.port = u.Port()
	if pre.portSuffix != "" && !strings.HasSuffix(b.host, pre.portSuffix) {
		b.host += pre.portSuffix
		b.port = pre.portSuffix[1:]
	}
	return b
}

// containsQuery reports whether the pre-fragment portion of s has a "?".
func containsQuery(s string) bool {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.IndexByte(s, '?') >= 0
}

// hasEmptyFragment reports whether s ends in a lone "#".
func hasEmptyFragment(s string) bool {
	i := strings.IndexByte(s, '#')
	return i >= 0 && i == len(s)-1
}

// joinUserinfo builds the decoded auth component. The colon appears only
// when a password is present; an all-empty userinfo is omitted entirely.
func joinUserinfo(username, password string) string {
	username = percentDecode(username)
	password = percentDecode(password)
	switch {
	case username == "" && password == "":
		return ""
	case password == "":
		return username
	default:
		return username + ":" + password
	}
}

func percentDecode(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

var (
	forcedEscapes = strings.NewReplacer("'", "%27", "^", "%5E", "|", "%7C", "`", "%60")
	escapeRunRe   = regexp.MustCompile(`(?:%[0-9A-Fa-f]{2})+`)
)

const upperhex = "0123456789ABCDEF"

// decodePath re-normalizes the delegate's path to the legacy escaping rules.
// Selected punctuation is forced into percent form, then every maximal run
// of escape triplets is decoded and re-encoded with uppercase hex, keeping
// alphanumerics and characters above U+0100 decoded. A run that does not
// decode to valid text is left untouched.
func decodePath(path string) string {
	path = forcedEscapes.Replace(path)
	return escapeRunRe.ReplaceAllStringFunc(path, func(run string) string {
		raw := make([]byte, 0, len(run)/3)
		for i := 0; i < len(run); i += 3 {
			raw = append(raw, unhex(run[i+1])<<4|unhex(run[i+2]))
		}
		if !utf8.Valid(raw) {
			return run
		}
		var out strings.Builder
		for _, r := range string(raw) {
			if isAlnum(r) || r > 256 {
				out.WriteRune(r)
				continue
			}
			var buf [4]byte
			n := utf8.EncodeRune(buf[:], r)
			for _, c := range buf[:n] {
				out.WriteByte('%')
				out.WriteByte(upperhex[c>>4])
				out.WriteByte(upperhex[c&0xF])
			}
		}
		return out.String()
	})
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
