// Package component holds the pure-data ECS components the connection
// manager attaches to connection entities. Pure data, zero methods — all
// mutation happens in system code.
package component

import "github.com/netherkeep/gameserver/internal/event"

// Connection tracks a connection entity's handshake progress and the
// outbound channel its session reads from.
type Connection struct {
	Verified       bool
	VersionChecked bool
	AccountName    string
	Channel        chan event.Event
}
