// Package connmgr implements the global-world Connection Manager System:
// registration, version check, and login-arbiter ticket handling, kicking
// off the post-init push once a connection is both verified and
// version-checked.
package connmgr

import "context"

// TicketValidator is the account/ticket backend's entry point. A nil
// validator on System falls back to the spec's documented default: accept
// unconditionally, pending a real backend.
type TicketValidator interface {
	Validate(ctx context.Context, masterAccount string, ticket []byte) (ok bool, status int32, err error)
}
