// Package urlformat reconstructs the canonical string form of a decomposed
// URL record. It is the inverse of the parse pipeline for well-formed
// records and intentionally preserves legacy quirks the underlying
// spec-compliant serializer would normalize away, such as an explicitly
// retained default port.
package urlformat

import "strings"

// Fields is the subset of record fields the serializer consumes. String
// fields hold the reconciled values, empty meaning absent.
type Fields struct {
	Protocol string // scheme including the trailing ":"
	Slashes  bool   // "//" followed the scheme in the source
	Auth     string // decoded "user" or "user:pass"
	Host     string // "hostname" or "hostname:port"
	Pathname string
	Search   string // includes the leading "?" when present
	Hash     string // includes the leading "#" when present
}

var slashedProtocols = map[string]bool{
	"http:":   true,
	"https:":  true,
	"ftp:":    true,
	"gopher:": true,
	"file:":   true,
}

// Format rebuilds "protocol//auth@host pathname search hash". The "//" is
// emitted when the record carried slashes, or when an authority is present
// under a slashed scheme or under no scheme at all (protocol-relative
// references).
func Format(f Fields) string {
	authority := f.Host
	if f.Auth != "" {
		authority = f.Auth + "@" + authority
	}

	var b strings.Builder
	b.WriteString(f.Protocol)
	if f.Slashes || (authority != "" && (f.Protocol == "" || slashedProtocols[strings.ToLower(f.Protocol)])) {
		b.WriteString("//")
	}
	b.WriteString(authority)
	b.WriteString(f.Pathname)
	b.WriteString(f.Search)
	b.WriteString(f.Hash)
	return b.String()
}
