// Package uistate persists per-section UI state (expand/collapse flags) in a
// local key-value store. Values are stored as the strings "true"/"false"
// under namespaced keys; interpretation is left to the caller.
package uistate

import "context"

// Store is a small key-value port. Get reports whether the key was present
// so callers can distinguish "absent" from an explicit "false".
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
