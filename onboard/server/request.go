package server

import (
	"bytes"
	"strings"

	errs "github.com/CodedInternet/gorccar/onboard/errors"
)

type Request struct {
	Method string
	Path   string
}

// ParseRequestLine reads the first line of a raw request. Only the path token
// is used by routing; headers and body are ignored.
func ParseRequestLine(raw []byte) (req Request, err error) {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}

	fields := strings.Fields(string(line))
	if len(fields) < 2 {
		return req, errs.ErrMalformedRequest
	}

	req.Method = fields[0]
	req.Path = fields[1]
	return
}

// ParseQuery splits the query part of a path on '?', '&' and '='. Keys are
// unique, the last occurrence wins. A pair without '=' is an error.
func ParseQuery(path string) (params map[string]string, err error) {
	params = make(map[string]string)

	i := strings.IndexByte(path, '?')
	if i < 0 {
		return
	}

	query := path[i+1:]
	if j := strings.IndexByte(query, '?'); j >= 0 {
		query = query[:j]
	}
	for _, pair := range strings.Split(query, "&") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, errs.QueryError{Pair: pair}
		}
		params[kv[0]] = kv[1]
	}
	return
}
