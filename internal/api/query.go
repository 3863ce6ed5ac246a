package api

import (
	"net/url"
	"sort"
	"strings"
)

// pair is one query-string parameter.
type pair struct {
	key, value string
}

// Params is an ordered set of query-string parameters. Unlike url.Values it
// preserves insertion order and keeps exactly one value per key: Set on an
// existing key replaces the value in place, so the last write wins.
type Params struct {
	pairs []pair
}

// Set stores value under key, replacing any existing value for that key. The
// key keeps its original position in the encoded output.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.pairs = append(p.pairs, pair{key, value})
}

// Get returns the value stored under key, or "" when the key is absent.
func (p *Params) Get(key string) string {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value
		}
	}
	return ""
}

// Len returns the number of stored parameters.
func (p *Params) Len() int { return len(p.pairs) }

// SetAll copies every entry of m into p in sorted key order, so the encoded
// result is deterministic regardless of map iteration order.
func (p *Params) SetAll(m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
}

// Encode serializes the parameters in insertion order with standard query
// escaping.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
