package input

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

var ErrNoInputFunc = errors.New("input: script does not define input(frame)")

// Script drives input from a Lua function:
//
//	function input(frame)
//	  return { forward = true, left = frame % 60 < 10 }
//	end
//
// Missing fields are false. A nil return means no buttons held.
type Script struct {
	l     *lua.LState
	fn    lua.LValue
	frame uint64
	last  Snapshot
}

// LoadScript compiles and runs the file at path, then looks up input.
func LoadScript(path string) (*Script, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("input: load script %q: %w", path, err)
	}
	return newScript(L)
}

// NewScriptString is LoadScript for inline source.
func NewScriptString(src string) (*Script, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("input: load script: %w", err)
	}
	return newScript(L)
}

func newScript(L *lua.LState) (*Script, error) {
	fn := L.GetGlobal("input")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoInputFunc
	}
	return &Script{l: L, fn: fn}, nil
}

// Next calls input(frame) and advances the frame counter.
func (s *Script) Next() (Snapshot, error) {
	frame := s.frame
	s.frame++
	if err := s.l.CallByParam(lua.P{Fn: s.fn, NRet: 1, Protect: true}, lua.LNumber(frame)); err != nil {
		return s.last, fmt.Errorf("input: script frame %d: %w", frame, err)
	}
	ret := s.l.Get(-1)
	s.l.Pop(1)

	var held Buttons
	switch v := ret.(type) {
	case *lua.LTable:
		for i, name := range buttonNames {
			if lua.LVAsBool(v.RawGetString(name)) {
				held |= 1 << i
			}
		}
	case *lua.LNilType:
	default:
		return s.last, fmt.Errorf("input: script frame %d returned %s, want table", frame, ret.Type())
	}
	s.last = s.last.Next(held)
	return s.last, nil
}

// Close releases the Lua state.
func (s *Script) Close() {
	if s.l != nil {
		s.l.Close()
		s.l = nil
	}
}
