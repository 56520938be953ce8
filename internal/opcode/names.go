package opcode

// Well-known opcode names the core's Event Model dispatches on. The
// numeric code behind each is build-specific and only known once a Table
// is loaded; these constants exist so the rest of the codebase never
// spells a name as a bare string literal.
const (
	CCheckVersion Name = "C_CHECK_VERSION"
	SCheckVersion Name = "S_CHECK_VERSION"

	CLoginArbiter Name = "C_LOGIN_ARBITER"
	SLoginArbiter Name = "S_LOGIN_ARBITER"

	SLoadingScreenControlInfo Name = "S_LOADING_SCREEN_CONTROL_INFO"
	SRemainPlayTime           Name = "S_REMAIN_PLAY_TIME"
	SLoginAccountInfo         Name = "S_LOGIN_ACCOUNT_INFO"

	CSetVisibleRange Name = "C_SET_VISIBLE_RANGE"

	CGetUserList Name = "C_GET_USER_LIST"
	SGetUserList Name = "S_GET_USER_LIST"

	CPong Name = "C_PONG"
	SPing Name = "S_PING"

	CCanCreateUser Name = "C_CAN_CREATE_USER"
	SCanCreateUser Name = "S_CAN_CREATE_USER"
	CCheckUserName Name = "C_CHECK_USER_NAME"
	SCheckUserName Name = "S_CHECK_USER_NAME"
	CCreateUser    Name = "C_CREATE_USER"
	SCreateUser    Name = "S_CREATE_USER"
)

// DefaultNames is the built-in opcode ordering used when no opcode table
// file is configured (tests, local development). Line order is arbitrary
// but stable; a real deployment always loads a build-specific table from
// disk via Load.
var DefaultNames = []Name{
	CCheckVersion,
	SCheckVersion,
	CLoginArbiter,
	SLoginArbiter,
	SLoadingScreenControlInfo,
	SRemainPlayTime,
	SLoginAccountInfo,
	CSetVisibleRange,
	CGetUserList,
	SGetUserList,
	CPong,
	SPing,
	CCanCreateUser,
	SCanCreateUser,
	CCheckUserName,
	SCheckUserName,
	CCreateUser,
	SCreateUser,
}
