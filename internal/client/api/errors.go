package api

import "fmt"

// RejectionError carries a server-side detail message through to the user
// verbatim. It is returned for any non-2xx response that is not mapped to a
// sentinel in internal/common.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server rejected request (status %d)", e.Status)
}
