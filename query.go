package main

import (
	"net/url"
	"strconv"
	"strings"
)

// Query collects upstream query parameters in insertion order.
//
// The zero value is ready to use. Values are only ever emitted when they
// carry information: empty strings and empty lists are treated as "no
// constraint" and dropped, while numeric zero and boolean false are real
// values and always encoded.
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// Add sets a string parameter. Empty values are dropped entirely; a key is
// never emitted with an empty value.
func (q *Query) Add(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
}

// AddList sets a list parameter as a single comma-joined value. An empty
// list is treated as absent, so AddList("status", nil) emits nothing and
// AddList("status", []string{"LIVE", "SOON"}) is identical to
// Add("status", "LIVE,SOON").
func (q *Query) AddList(key string, values []string) {
	if len(values) == 0 {
		return
	}
	q.Add(key, strings.Join(values, ","))
}

// AddInt sets an integer parameter. Zero is a valid value and is encoded.
func (q *Query) AddInt(key string, value int) {
	q.pairs = append(q.pairs, queryPair{key: key, value: strconv.Itoa(value)})
}

// AddNumber sets a numeric parameter in its canonical shortest decimal
// form, so whole numbers encode without a trailing fraction (100, not 100.0).
func (q *Query) AddNumber(key string, value float64) {
	q.pairs = append(q.pairs, queryPair{key: key, value: formatNumber(value)})
}

// AddBool sets a boolean parameter. False is a valid value and is encoded.
func (q *Query) AddBool(key string, value bool) {
	q.pairs = append(q.pairs, queryPair{key: key, value: strconv.FormatBool(value)})
}

// Len returns the number of parameters set so far.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Encode renders the query string: "" when no parameters were set, else
// "?" followed by the percent-encoded pairs in insertion order.
//
// url.Values is deliberately not used here: its Encode sorts keys
// alphabetically, and this codec preserves the order filters were applied in.
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('?')
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// formatNumber renders a float in its shortest round-trippable decimal form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
