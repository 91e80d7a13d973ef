package util

import "net/url"

// RequestKey canonicalizes a request identity to "METHOD path[?query]".
// Scheme, host and fragment are dropped so a precached origin-relative path
// matches the absolute URL the page requests at runtime.
func RequestKey(method, rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return method + " " + rawurl
	}
	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return method + " " + p
}
