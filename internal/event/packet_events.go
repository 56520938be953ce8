package event

import (
	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/protocol"
	"github.com/netherkeep/gameserver/internal/wire"
)

// PacketEvent is the subset of Event that wraps a decoded or to-be-encoded
// packet; ToWire uses OpcodeName/WirePacket to serialize any Response
// variant without a type switch.
type PacketEvent interface {
	Event
	OpcodeName() opcode.Name
	WirePacket() wire.Packet
}

// RequestCheckVersion wraps an inbound C_CHECK_VERSION. Routed Global
// because the connection-manager system, which owns version-check policy,
// lives on the global world.
type RequestCheckVersion struct {
	ConnID ecs.EntityID
	Packet *protocol.CCheckVersion
}

func (e *RequestCheckVersion) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestCheckVersion) EventTarget() Target                  { return TargetGlobal }
func (*RequestCheckVersion) OpcodeName() opcode.Name               { return opcode.CCheckVersion }
func (e *RequestCheckVersion) WirePacket() wire.Packet              { return e.Packet }

// ResponseCheckVersion answers a version check on the originating
// connection.
type ResponseCheckVersion struct {
	ConnID ecs.EntityID
	Packet *protocol.SCheckVersion
}

func (e *ResponseCheckVersion) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseCheckVersion) EventTarget() Target                  { return TargetConnection }
func (*ResponseCheckVersion) OpcodeName() opcode.Name               { return opcode.SCheckVersion }
func (e *ResponseCheckVersion) WirePacket() wire.Packet              { return e.Packet }

// RequestLoginArbiter wraps an inbound C_LOGIN_ARBITER.
type RequestLoginArbiter struct {
	ConnID ecs.EntityID
	Packet *protocol.CLoginArbiter
}

func (e *RequestLoginArbiter) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestLoginArbiter) EventTarget() Target                  { return TargetGlobal }
func (*RequestLoginArbiter) OpcodeName() opcode.Name               { return opcode.CLoginArbiter }
func (e *RequestLoginArbiter) WirePacket() wire.Packet              { return e.Packet }

// ResponseLoginArbiter answers a login-arbiter ticket submission.
type ResponseLoginArbiter struct {
	ConnID ecs.EntityID
	Packet *protocol.SLoginArbiter
}

func (e *ResponseLoginArbiter) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseLoginArbiter) EventTarget() Target                  { return TargetConnection }
func (*ResponseLoginArbiter) OpcodeName() opcode.Name               { return opcode.SLoginArbiter }
func (e *ResponseLoginArbiter) WirePacket() wire.Packet              { return e.Packet }

// ResponseLoadingScreenControlInfo is the first post-init push.
type ResponseLoadingScreenControlInfo struct {
	ConnID ecs.EntityID
	Packet *protocol.SLoadingScreenControlInfo
}

func (e *ResponseLoadingScreenControlInfo) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseLoadingScreenControlInfo) EventTarget() Target { return TargetConnection }
func (*ResponseLoadingScreenControlInfo) OpcodeName() opcode.Name {
	return opcode.SLoadingScreenControlInfo
}
func (e *ResponseLoadingScreenControlInfo) WirePacket() wire.Packet { return e.Packet }

// ResponseRemainPlayTime is the second post-init push.
type ResponseRemainPlayTime struct {
	ConnID ecs.EntityID
	Packet *protocol.SRemainPlayTime
}

func (e *ResponseRemainPlayTime) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseRemainPlayTime) EventTarget() Target                  { return TargetConnection }
func (*ResponseRemainPlayTime) OpcodeName() opcode.Name               { return opcode.SRemainPlayTime }
func (e *ResponseRemainPlayTime) WirePacket() wire.Packet              { return e.Packet }

// ResponseLoginAccountInfo is the third post-init push.
type ResponseLoginAccountInfo struct {
	ConnID ecs.EntityID
	Packet *protocol.SLoginAccountInfo
}

func (e *ResponseLoginAccountInfo) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseLoginAccountInfo) EventTarget() Target                  { return TargetConnection }
func (*ResponseLoginAccountInfo) OpcodeName() opcode.Name               { return opcode.SLoginAccountInfo }
func (e *ResponseLoginAccountInfo) WirePacket() wire.Packet              { return e.Packet }

// RequestSetVisibleRange wraps an inbound C_SET_VISIBLE_RANGE. Decode-only
// in this core; no response is defined.
type RequestSetVisibleRange struct {
	ConnID ecs.EntityID
	Packet *protocol.CSetVisibleRange
}

func (e *RequestSetVisibleRange) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestSetVisibleRange) EventTarget() Target                  { return TargetGlobal }
func (*RequestSetVisibleRange) OpcodeName() opcode.Name               { return opcode.CSetVisibleRange }
func (e *RequestSetVisibleRange) WirePacket() wire.Packet              { return e.Packet }

// RequestGetUserList wraps an inbound C_GET_USER_LIST.
type RequestGetUserList struct {
	ConnID ecs.EntityID
	Packet *protocol.CGetUserList
}

func (e *RequestGetUserList) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestGetUserList) EventTarget() Target                  { return TargetGlobal }
func (*RequestGetUserList) OpcodeName() opcode.Name               { return opcode.CGetUserList }
func (e *RequestGetUserList) WirePacket() wire.Packet              { return e.Packet }

// ResponseGetUserList answers a RequestGetUserList.
type ResponseGetUserList struct {
	ConnID ecs.EntityID
	Packet *protocol.SGetUserList
}

func (e *ResponseGetUserList) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseGetUserList) EventTarget() Target                  { return TargetConnection }
func (*ResponseGetUserList) OpcodeName() opcode.Name               { return opcode.SGetUserList }
func (e *ResponseGetUserList) WirePacket() wire.Packet              { return e.Packet }

// RequestPong answers a server-pushed ping.
type RequestPong struct {
	ConnID ecs.EntityID
	Packet *protocol.CPong
}

func (e *RequestPong) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestPong) EventTarget() Target                  { return TargetGlobal }
func (*RequestPong) OpcodeName() opcode.Name               { return opcode.CPong }
func (e *RequestPong) WirePacket() wire.Packet              { return e.Packet }

// ResponsePing carries an S_PING to a connection. No system in this core
// emits one.
type ResponsePing struct {
	ConnID ecs.EntityID
	Packet *protocol.SPing
}

func (e *ResponsePing) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponsePing) EventTarget() Target                  { return TargetConnection }
func (*ResponsePing) OpcodeName() opcode.Name               { return opcode.SPing }
func (e *ResponsePing) WirePacket() wire.Packet              { return e.Packet }

// RequestCanCreateUser wraps an inbound C_CAN_CREATE_USER.
type RequestCanCreateUser struct {
	ConnID ecs.EntityID
	Packet *protocol.CCanCreateUser
}

func (e *RequestCanCreateUser) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestCanCreateUser) EventTarget() Target                  { return TargetGlobal }
func (*RequestCanCreateUser) OpcodeName() opcode.Name               { return opcode.CCanCreateUser }
func (e *RequestCanCreateUser) WirePacket() wire.Packet              { return e.Packet }

// ResponseCanCreateUser answers a RequestCanCreateUser.
type ResponseCanCreateUser struct {
	ConnID ecs.EntityID
	Packet *protocol.SCanCreateUser
}

func (e *ResponseCanCreateUser) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseCanCreateUser) EventTarget() Target                  { return TargetConnection }
func (*ResponseCanCreateUser) OpcodeName() opcode.Name               { return opcode.SCanCreateUser }
func (e *ResponseCanCreateUser) WirePacket() wire.Packet              { return e.Packet }

// RequestCheckUserName wraps an inbound C_CHECK_USER_NAME.
type RequestCheckUserName struct {
	ConnID ecs.EntityID
	Packet *protocol.CCheckUserName
}

func (e *RequestCheckUserName) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestCheckUserName) EventTarget() Target                  { return TargetGlobal }
func (*RequestCheckUserName) OpcodeName() opcode.Name               { return opcode.CCheckUserName }
func (e *RequestCheckUserName) WirePacket() wire.Packet              { return e.Packet }

// ResponseCheckUserName answers a RequestCheckUserName.
type ResponseCheckUserName struct {
	ConnID ecs.EntityID
	Packet *protocol.SCheckUserName
}

func (e *ResponseCheckUserName) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseCheckUserName) EventTarget() Target                  { return TargetConnection }
func (*ResponseCheckUserName) OpcodeName() opcode.Name               { return opcode.SCheckUserName }
func (e *ResponseCheckUserName) WirePacket() wire.Packet              { return e.Packet }

// RequestCreateUser wraps an inbound C_CREATE_USER.
type RequestCreateUser struct {
	ConnID ecs.EntityID
	Packet *protocol.CCreateUser
}

func (e *RequestCreateUser) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*RequestCreateUser) EventTarget() Target                  { return TargetGlobal }
func (*RequestCreateUser) OpcodeName() opcode.Name               { return opcode.CCreateUser }
func (e *RequestCreateUser) WirePacket() wire.Packet              { return e.Packet }

// ResponseCreateUser answers a RequestCreateUser.
type ResponseCreateUser struct {
	ConnID ecs.EntityID
	Packet *protocol.SCreateUser
}

func (e *ResponseCreateUser) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (*ResponseCreateUser) EventTarget() Target                  { return TargetConnection }
func (*ResponseCreateUser) OpcodeName() opcode.Name               { return opcode.SCreateUser }
func (e *ResponseCreateUser) WirePacket() wire.Packet              { return e.Packet }
