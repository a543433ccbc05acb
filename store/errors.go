package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoProvider  = errors.New("store: provider is required")
	ErrNoNamespace = errors.New("store: namespace is required")
	ErrEmptyKey    = errors.New("store: empty key")
)

// DeleteError collects the per-key failures of DelMany.
type DeleteError struct {
	Keys []string
	Errs []error
}

func (e *DeleteError) Error() string {
	switch len(e.Keys) {
	case 0:
		return "store: delete: unknown error"
	case 1:
		return fmt.Sprintf("store: delete %q: %v", e.Keys[0], e.Errs[0])
	default:
		parts := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			parts[i] = fmt.Sprintf("%q: %v", k, e.Errs[i])
		}
		return fmt.Sprintf("store: delete failed for %d keys: %s", len(e.Keys), strings.Join(parts, "; "))
	}
}

func (e *DeleteError) Unwrap() []error {
	return e.Errs
}
