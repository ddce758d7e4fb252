// Package querystring decodes and encodes application/x-www-form-urlencoded
// query strings while preserving key order. Keys appear in first-occurrence
// order and repeated keys accumulate their values into a sequence, matching
// the behavior of the legacy query codec.
package querystring

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Values is an ordered multimap of query parameters.
type Values struct {
	keys   []string
	values map[string][]string
}

// New creates an empty Values.
func New() *Values {
	return &Values{values: make(map[string][]string)}
}

// Parse decodes a "key=value&key=value" string. A pair without "=" becomes a
// key with an empty value. Tokens with escapes that cannot be decoded are
// kept verbatim rather than dropped.
func Parse(query string) *Values {
	v := New()
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		v.Add(unescape(key), unescape(value))
	}
	return v
}

// Add appends value under key, registering the key on first use.
func (v *Values) Add(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = append(v.values[key], value)
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	_, ok := v.values[key]
	return ok
}

// Get returns the first value recorded for key, or "".
func (v *Values) Get(key string) string {
	if vals := v.values[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// GetAll returns every value recorded for key in order of appearance.
func (v *Values) GetAll(key string) []string {
	return v.values[key]
}

// Keys returns the keys in first-occurrence order.
func (v *Values) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Len returns the number of distinct keys.
func (v *Values) Len() int {
	return len(v.keys)
}

// Encode serializes back to "key=value&key=value" form in insertion order,
// with spaces encoded as "+".
func (v *Values) Encode() string {
	var b strings.Builder
	for _, key := range v.keys {
		for _, value := range v.values[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escape(key))
			b.WriteByte('=')
			b.WriteString(escape(value))
		}
	}
	return b.String()
}

// MarshalJSON renders an ordered object. A key with a single value maps to a
// string, repeated keys map to an array of strings.
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		vals := v.values[key]
		var encodedValue []byte
		if len(vals) == 1 {
			encodedValue, err = json.Marshal(vals[0])
		} else {
			encodedValue, err = json.Marshal(vals)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
