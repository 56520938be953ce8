// Package policy implements a pluggable, scriptable TicketValidator: a
// login server operator who doesn't want to run the Postgres-backed
// accountstore can instead drop a Lua script that decides accept/reject.
package policy

import (
	"context"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// LuaValidator calls into a single embedded Lua state. gopher-lua states
// are not goroutine-safe, so every call is serialized behind mu — ticket
// validation is rare enough (once per login, not per tick) that this
// never becomes a bottleneck.
type LuaValidator struct {
	mu sync.Mutex
	vm *lua.LState
	fn *lua.LFunction
}

// NewLuaValidator loads scriptPath and binds its validate_ticket(account,
// ticket) -> accepted, status global function.
func NewLuaValidator(scriptPath string) (*LuaValidator, error) {
	vm := lua.NewState()
	if err := vm.DoFile(scriptPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("policy: load %s: %w", scriptPath, err)
	}
	fn, ok := vm.GetGlobal("validate_ticket").(*lua.LFunction)
	if !ok {
		vm.Close()
		return nil, fmt.Errorf("policy: %s does not define validate_ticket", scriptPath)
	}
	return &LuaValidator{vm: vm, fn: fn}, nil
}

// Close releases the embedded Lua state.
func (v *LuaValidator) Close() { v.vm.Close() }

// Validate implements connmgr.TicketValidator.
func (v *LuaValidator) Validate(_ context.Context, masterAccount string, ticket []byte) (bool, int32, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.vm.CallByParam(
		lua.P{Fn: v.fn, NRet: 2, Protect: true},
		lua.LString(masterAccount),
		lua.LString(ticket),
	)
	if err != nil {
		return false, 0, fmt.Errorf("policy: validate_ticket: %w", err)
	}
	defer v.vm.SetTop(0)

	ok := lua.LVAsBool(v.vm.Get(-2))
	status := int32(lua.LVAsNumber(v.vm.Get(-1)))
	return ok, status, nil
}
