package hashnav

import (
	"net/url"
	"strings"
)

// hrefParts is a decomposed URL in the shape hash navigation cares
// about. The fragment may itself carry a query component ("#/a/b?x=1"),
// which is the usual hash-router convention; a query before the
// fragment ("?x=1#/a/b") is also honored.
type hrefParts struct {
	base      string // everything before '?' and '#'
	query     string // URL query component, without '?'
	fragPath  string // fragment up to any embedded '?', without '#'
	fragQuery string // query embedded in the fragment, without '?'

	hasFragment  bool // href contained '#'
	hasFragQuery bool // fragment contained '?'
}

// parseHref splits an href into its parts. Purely lexical; nothing is
// percent-decoded here.
func parseHref(href string) hrefParts {
	var p hrefParts

	rest := href
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.hasFragment = true
		frag := rest[i+1:]
		rest = rest[:i]
		if j := strings.IndexByte(frag, '?'); j >= 0 {
			p.hasFragQuery = true
			p.fragPath = frag[:j]
			p.fragQuery = frag[j+1:]
		} else {
			p.fragPath = frag
		}
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.query = rest[i+1:]
		rest = rest[:i]
	}

	p.base = rest
	return p
}

// String reassembles the href.
func (p hrefParts) String() string {
	var b strings.Builder
	b.WriteString(p.base)
	if p.query != "" {
		b.WriteByte('?')
		b.WriteString(p.query)
	}
	if p.hasFragment {
		b.WriteByte('#')
		b.WriteString(p.fragPath)
		if p.hasFragQuery {
			b.WriteByte('?')
			b.WriteString(p.fragQuery)
		}
	}
	return b.String()
}

// effectiveQuery returns the raw query the route state derives from.
// A query embedded in the fragment wins over the URL's own query.
func (p hrefParts) effectiveQuery() string {
	if p.hasFragQuery {
		return p.fragQuery
	}
	return p.query
}

// setParam returns a copy of the parts with key=value set in the
// effective query component. When no query exists anywhere, the param
// goes into the fragment if there is one, otherwise into the URL query.
func (p hrefParts) setParam(key, value string) hrefParts {
	vals := parseQuery(p.effectiveQuery())
	vals[key] = value

	raw := encodeQuery(vals)
	switch {
	case p.hasFragQuery:
		p.fragQuery = raw
	case p.query != "":
		p.query = raw
	case p.hasFragment:
		p.hasFragQuery = true
		p.fragQuery = raw
	default:
		p.query = raw
	}
	return p
}

// splitSegments splits a fragment path on '/' and drops empty tokens.
func splitSegments(fragPath string) []string {
	parts := strings.Split(fragPath, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// parseQuery decodes a raw query into a flat map. Unparsable pairs are
// dropped, valid ones survive; no error escapes. When a key repeats,
// the last value wins.
func parseQuery(raw string) map[string]string {
	params := make(map[string]string)
	if raw == "" {
		return params
	}

	vals, _ := url.ParseQuery(raw)
	for key, list := range vals {
		if len(list) > 0 {
			params[key] = list[len(list)-1]
		}
	}
	return params
}

// encodeQuery encodes a flat map as a raw query with stable key order.
func encodeQuery(params map[string]string) string {
	vals := make(url.Values, len(params))
	for k, v := range params {
		vals.Set(k, v)
	}
	return vals.Encode()
}
