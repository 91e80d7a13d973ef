package offcache

import (
	"io"
	"net/http"
	"net/url"
)

// Request is the intercepted request the controller routes on.
type Request struct {
	Method string
	URL    string // absolute URL or origin-relative path
	Header http.Header
	Body   []byte
}

func NewRequest(method, rawurl string) *Request {
	return &Request{Method: method, URL: rawurl, Header: make(http.Header)}
}

// FromHTTPRequest snapshots an *http.Request, draining its body.
func FromHTTPRequest(r *http.Request) (*Request, error) {
	req := &Request{
		Method: r.Method,
		URL:    r.URL.String(),
		Header: r.Header.Clone(),
	}
	if r.Body != nil && r.Body != http.NoBody {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		_ = r.Body.Close()
		req.Body = b
	}
	return req, nil
}

// Path returns the URL path component, or the raw URL when it does not parse.
func (r *Request) Path() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return r.URL
	}
	return u.Path
}
