package ir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModule() *Module {
	return NewModule("test", DataLayout{PointerBits: 64})
}

func TestModuleLookupDistinguishesGlobals(t *testing.T) {
	m := newTestModule()
	i8p := m.Types.BytePtr(0)
	f := m.NewFunction("strlen", m.Types.Func(m.IntPtrType(), []TypeID{i8p}, false))
	m.NewGlobalVar("errno", m.Types.Int(32))

	assert.Same(t, f, m.Function("strlen"))
	assert.Same(t, m, f.Parent())
	assert.Nil(t, m.Function("errno"))
	_, isVar := m.Lookup("errno").(*GlobalVar)
	assert.True(t, isVar)
	assert.Nil(t, m.Lookup("missing"))
	assert.Len(t, m.Globals(), 2)
	assert.Len(t, m.Functions(), 1)
}

func TestModuleRejectsDuplicateNames(t *testing.T) {
	m := newTestModule()
	m.NewGlobalVar("x", m.Types.Int(8))
	assert.Panics(t, func() {
		m.NewFunction("x", m.Types.Func(m.Types.Void(), nil, false))
	})
}

func TestBuilderCallAndCasts(t *testing.T) {
	m := newTestModule()
	i8p := m.Types.BytePtr(0)
	i32p := m.Types.Pointer(m.Types.Int(32), 0)
	strlen := m.NewFunction("strlen", m.Types.Func(m.IntPtrType(), []TypeID{i8p}, false))
	caller := m.NewFunction("f", m.Types.Func(m.Types.Void(), []TypeID{i32p, m.Types.Int(8)}, false))
	caller.Param(0).SetName("p")

	b := NewBuilder(caller.NewBlock("entry"))
	cstr := b.CreateBitCast(caller.Param(0), i8p, "cstr")
	call := b.CreateCall(strlen, []Value{cstr}, "strlen")
	wide := b.CreateIntCast(caller.Param(1), b.Int32Ty(), true, "chari")
	b.CreateRet(nil)

	assert.Equal(t, "%strlen", call.Ref())
	assert.Equal(t, m.IntPtrType(), call.Type())
	assert.Equal(t, CastSExt, wide.(*Cast).Op)
	assert.Same(t, caller.Param(1), b.CreateIntCast(caller.Param(1), m.Types.Int(8), true, ""))

	text := m.String()
	assert.Contains(t, text, "declare i64 @strlen(i8*)")
	assert.Contains(t, text, "%cstr = bitcast i32* %p to i8*")
	assert.Contains(t, text, "%strlen = call i64 @strlen(i8* %cstr)")
	assert.Contains(t, text, "%chari = sext i8 %1 to i32")
	assert.True(t, strings.HasSuffix(text, "  ret void\n}\n"))
}

func TestBuilderRejectsMismatchedOperands(t *testing.T) {
	m := newTestModule()
	i8p := m.Types.BytePtr(0)
	strlen := m.NewFunction("strlen", m.Types.Func(m.IntPtrType(), []TypeID{i8p}, false))
	caller := m.NewFunction("f", m.Types.Func(m.Types.Void(), []TypeID{m.Types.Int(32)}, false))
	b := NewBuilder(caller.NewBlock("entry"))

	assert.Panics(t, func() { b.CreateCall(strlen, []Value{caller.Param(0)}, "") })
	assert.Panics(t, func() { b.CreateCall(strlen, nil, "") })
}

func TestUniqueInstructionNames(t *testing.T) {
	m := newTestModule()
	i8p := m.Types.BytePtr(0)
	strlen := m.NewFunction("strlen", m.Types.Func(m.IntPtrType(), []TypeID{i8p}, false))
	caller := m.NewFunction("f", m.Types.Func(m.Types.Void(), []TypeID{i8p}, false))
	b := NewBuilder(caller.NewBlock("entry"))

	first := b.CreateCall(strlen, []Value{caller.Param(0)}, "strlen")
	second := b.CreateCall(strlen, []Value{caller.Param(0)}, "strlen")
	require.NotEqual(t, first.Ref(), second.Ref())
	assert.Equal(t, "%strlen1", second.Ref())
}
