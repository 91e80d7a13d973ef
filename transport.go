package offcache

import "net/http"

// Transport intercepts outgoing requests and routes them through an active
// controller. Until the controller activates (or with no controller at all)
// requests pass through Base untouched, like a page not yet under control.
type Transport struct {
	Controller Controller
	Base       http.RoundTripper // nil => http.DefaultTransport
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Controller == nil || t.Controller.State() != StateActive {
		return t.base().RoundTrip(req)
	}
	r, err := FromHTTPRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := t.Controller.HandleFetch(req.Context(), r)
	if err != nil {
		return nil, err
	}
	return resp.HTTPResponse(req), nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
