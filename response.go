package offcache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Response is a stored network response. This is the bucket value type;
// serialization is handled by a pluggable codec.
type Response struct {
	Status int         `json:"status"`
	Header http.Header `json:"header,omitempty"`
	Body   []byte      `json:"body,omitempty"`
	URL    string      `json:"url,omitempty"` // final URL after redirects
}

// Ok reports a 2xx status.
func (r *Response) Ok() bool { return r.Status >= 200 && r.Status < 300 }

// HTTPResponse converts back to the stdlib type for RoundTripper consumers.
func (r *Response) HTTPResponse(req *http.Request) *http.Response {
	h := r.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", r.Status, http.StatusText(r.Status)),
		StatusCode:    r.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        h,
		Body:          io.NopCloser(bytes.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}
}
