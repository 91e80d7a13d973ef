package offcache

import (
	"errors"
	"fmt"
)

var (
	// ErrNotActive is returned by HandleFetch before activation completes.
	ErrNotActive = errors.New("offcache: controller not active")

	// ErrWaiting is returned by Activate while a prior instance still holds
	// its clients and SkipWaiting was not set. Call Release to clear it.
	ErrWaiting = errors.New("offcache: waiting for prior instance to release")
)

// InstallError reports a failed precache population. The new version never
// becomes active; CleanupErr is set when a partially created bucket could not
// be removed afterwards.
type InstallError struct {
	Version    string
	Path       string // manifest path that failed; empty for batch-commit failures
	FetchErr   error
	CleanupErr error
}

func (e *InstallError) Error() string {
	switch {
	case e.Path != "" && e.CleanupErr != nil:
		return fmt.Sprintf("install %q failed: precache %q: %v; bucket cleanup failed: %v",
			e.Version, e.Path, e.FetchErr, e.CleanupErr)
	case e.Path != "":
		return fmt.Sprintf("install %q failed: precache %q: %v", e.Version, e.Path, e.FetchErr)
	case e.CleanupErr != nil:
		return fmt.Sprintf("install %q failed: %v; bucket cleanup failed: %v",
			e.Version, e.FetchErr, e.CleanupErr)
	default:
		return fmt.Sprintf("install %q failed: %v", e.Version, e.FetchErr)
	}
}

func (e *InstallError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.FetchErr != nil {
		errs = append(errs, e.FetchErr)
	}
	if e.CleanupErr != nil {
		errs = append(errs, e.CleanupErr)
	}
	return errs
}

// StateError reports a lifecycle call made from the wrong state.
type StateError struct {
	Op   string
	Have State
	Want State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("offcache: %s from state %s (want %s)", e.Op, e.Have, e.Want)
}
