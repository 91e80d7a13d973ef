package offcache

import (
	"errors"
	"fmt"
	"strings"
)

// Manifest is the fixed ordered list of resource paths populated into the
// version bucket at install time. Every listed path must be fetchable at
// install time or the installation fails entirely.
type Manifest []string

// Validate rejects empty manifests, relative paths, and duplicates.
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return errors.New("offcache: manifest is required")
	}
	seen := make(map[string]struct{}, len(m))
	for _, p := range m {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("offcache: manifest path %q is not origin-relative", p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("offcache: duplicate manifest path %q", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
