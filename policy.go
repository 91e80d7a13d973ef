package offcache

import "strings"

// Policy decides which source a request consults first.
type Policy uint8

const (
	// CacheFirst serves from the bucket when an entry exists and only then
	// touches the network. Static assets are immutable per version.
	CacheFirst Policy = iota

	// NetworkFirst always tries the network and falls back to the bucket on
	// transport failure. Page documents must never be served stale online.
	NetworkFirst
)

func (p Policy) String() string {
	if p == NetworkFirst {
		return "network-first"
	}
	return "cache-first"
}

// DefaultDocumentSuffixes marks page documents.
var DefaultDocumentSuffixes = []string{".html"}

// Route is the pure routing decision: paths ending in a document suffix are
// network-first, everything else cache-first. It never touches the network
// or the bucket store.
func Route(documentSuffixes []string, path string) Policy {
	for _, s := range documentSuffixes {
		if strings.HasSuffix(path, s) {
			return NetworkFirst
		}
	}
	return CacheFirst
}
