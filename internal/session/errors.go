package session

import "errors"

// errChannelClosed is returned when the response channel closes before
// registration completes — the global world shut down mid-handshake.
var errChannelClosed = errors.New("session: response channel closed before registration")
