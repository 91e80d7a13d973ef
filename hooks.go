package offcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The controller calls them on hot paths.
type Hooks interface {
	// A precache resource could not be fetched or stored during install.
	PrecacheError(version, path string, err error)

	// Install committed the full manifest batch into the version bucket.
	PrecacheComplete(version string, entries int)

	// A stale bucket was deleted during activation.
	BucketEvicted(name string)

	// A page-document request failed over the network and was served
	// from the bucket instead.
	NetworkFallback(key string)

	// A cache-first request missed the bucket and went to the network.
	// The response is not written back; persistent passthrough for the same
	// key means the asset is absent from the precache manifest.
	FetchPassthrough(key string)

	// A bucket entry could not be decoded and was treated as a miss.
	// reason ∈ {"frame", "payload"}
	CorruptEntry(key, reason string)

	// Bucket store read error (treated as a miss on the fetch path).
	BucketGetError(key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) PrecacheError(string, string, error) {}
func (NopHooks) PrecacheComplete(string, int)        {}
func (NopHooks) BucketEvicted(string)                {}
func (NopHooks) NetworkFallback(string)              {}
func (NopHooks) FetchPassthrough(string)             {}
func (NopHooks) CorruptEntry(string, string)         {}
func (NopHooks) BucketGetError(string, error)        {}
