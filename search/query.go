// Package search builds and validates STAC item-search requests. It turns a
// set of optional filters into a normalized, version-aware query, decides the
// endpoint path and verb legality, and parses the HTTP response into a typed
// document. The package is purely functional: every operation returns a new
// value and never touches shared state, so queries can be built and guarded
// concurrently without coordination.
package search

import (
	"iter"
	"net/http"
	"net/url"
)

// Verb is the HTTP method a query will be dispatched with.
type Verb string

const (
	// VerbGet dispatches the search as a GET with URL query parameters.
	VerbGet Verb = http.MethodGet
	// VerbPost dispatches the search as a POST with a JSON body.
	VerbPost Verb = http.MethodPost
)

// Kind discriminates what a Query is for. Build refuses queries that are not
// search-capable.
type Kind int

const (
	// KindUnknown marks a zero or foreign query.
	KindUnknown Kind = iota
	// KindSearch marks a query usable with Build and the /search endpoints.
	KindSearch
)

// Query is an immutable search request under construction. It carries the
// API version reported by the service, the service base URL, the accumulated
// wire parameters, and the verb it will be dispatched with. Methods that
// change a Query return a new value; the receiver is never modified.
type Query struct {
	Version string
	BaseURL string
	Verb    Verb
	Kind    Kind

	params Params
}

// NewQuery returns a search-capable Query for the given service.
// Version is the stac_version advertised by the service landing page.
// The verb defaults to GET; use WithVerb to switch to POST.
func NewQuery(baseURL, version string) Query {
	return Query{
		Version: version,
		BaseURL: baseURL,
		Verb:    VerbGet,
		Kind:    KindSearch,
	}
}

// WithVerb returns a copy of the query with the verb replaced.
func (q Query) WithVerb(verb Verb) Query {
	q.params = q.params.clone()
	q.Verb = verb
	return q
}

// Params returns the accumulated parameters. The returned value shares no
// storage with the query.
func (q Query) Params() Params {
	return q.params.clone()
}

// Param looks up a single parameter by wire key.
func (q Query) Param(key string) (Value, bool) {
	return q.params.Get(key)
}

func (q Query) withParams(p Params) Query {
	q.params = p
	return q
}

// Params is an insertion-ordered set of wire parameters with unique keys.
// Setting an existing key replaces its value but keeps its original position,
// so serialization order is deterministic across merges.
type Params struct {
	keys   []string
	values map[string]Value
}

// Len reports the number of parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Get returns the value stored under key.
func (p Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter keys in insertion order.
func (p Params) Keys() []string {
	return append([]string{}, p.keys...)
}

// All iterates over the parameters in insertion order.
func (p Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range p.keys {
			if !yield(key, p.values[key]) {
				return
			}
		}
	}
}

// QueryValues renders the parameters in their GET query-string form.
func (p Params) QueryValues() url.Values {
	values := make(url.Values, len(p.keys))
	for _, key := range p.keys {
		values.Set(key, p.values[key].QueryValue())
	}
	return values
}

// Body renders the parameters in their POST JSON-body form.
func (p Params) Body() map[string]any {
	body := make(map[string]any, len(p.keys))
	for _, key := range p.keys {
		body[key] = p.values[key].BodyValue()
	}
	return body
}

func (p Params) clone() Params {
	if len(p.keys) == 0 {
		return Params{}
	}
	cp := Params{
		keys:   append([]string{}, p.keys...),
		values: make(map[string]Value, len(p.values)),
	}
	for key, v := range p.values {
		cp.values[key] = v
	}
	return cp
}

// set stores a value under key, right-biased: an existing key keeps its
// position, the value is replaced.
func (p *Params) set(key string, value Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}
