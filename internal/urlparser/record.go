package urlparser

import (
	"encoding/json"

	"github.com/urlkit/legacyurl/internal/querystring"
)

// Field is a single record component that distinguishes an absent value
// from an empty one, mirroring the null fields of the legacy record shape.
// The zero value is absent; JSON renders absent as null.
type Field struct {
	String string
	Valid  bool
}

// NewField returns a present Field holding s, including the empty string.
func NewField(s string) Field {
	return Field{String: s, Valid: true}
}

// MarshalJSON renders the value, or null when the field is absent.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.String)
}

// Record is the decomposed, normalized form of an input string. Every field
// is recomputed per call; a Record never aliases parser state.
//
// Exactly one of Query and QueryValues is populated: Query carries the raw
// search tail (without the leading "?") in the default mode, QueryValues the
// decoded ordered mapping when Options.ParseQuery is set. JSON output folds
// both into the single legacy "query" member.
type Record struct {
	Protocol Field `json:"protocol"`
	Slashes  bool  `json:"slashes"`
	Auth     Field `json:"auth"`
	Host     Field `json:"host"`
	Port     Field `json:"port"`
	Hostname Field `json:"hostname"`
	Hash     Field `json:"hash"`
	Search   Field `json:"search"`
	Query    Field `json:"query"`
	Pathname Field `json:"pathname"`
	Path     Field `json:"path"`
	Href     Field `json:"href"`

	QueryValues *querystring.Values `json:"-"`
}

// String returns the canonical serialization of the record.
func (r *Record) String() string {
	return r.Href.String
}

// MarshalJSON emits the legacy field names, substituting the decoded query
// mapping for "query" when one was produced.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	aux := struct {
		plain
		Query any `json:"query"`
	}{plain: plain(r)}

	switch {
	case r.QueryValues != nil:
		aux.Query = r.QueryValues
	case r.Query.Valid:
		aux.Query = r.Query.String
	default:
		aux.Query = nil
	}
	return json.Marshal(aux)
}
