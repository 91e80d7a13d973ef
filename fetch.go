package offcache

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Fetcher is the network fetch primitive: one request, one response or one
// error. No retry wrapper; a hung fetch stalls only its own caller, bounded
// by the context.
type Fetcher interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPFetcher performs real fetches with an *http.Client.
// The zero value uses http.DefaultClient.
type HTTPFetcher struct {
	Client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

func (f *HTTPFetcher) Do(ctx context.Context, req *Request) (*Response, error) {
	hc := f.Client
	if hc == nil {
		hc = http.DefaultClient
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}

	resp, err := hc.Do(hr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   b,
		URL:    finalURL,
	}, nil
}
