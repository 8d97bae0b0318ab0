package libfunc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libcall/internal/ir"
	"libcall/internal/target"
)

func builtinInfo(t *testing.T, name string) *TargetInfo {
	t.Helper()
	p, err := target.Builtin(name)
	require.NoError(t, err)
	ti, err := NewTargetInfo(p)
	require.NoError(t, err)
	return ti
}

func TestSymbolsRoundTrip(t *testing.T) {
	assert.Equal(t, 318, NumIDs)
	assert.Len(t, All(), NumIDs)
	for _, id := range All() {
		got, ok := ByName(id.Symbol())
		require.True(t, ok, id.Symbol())
		assert.Equal(t, id, got)
	}
	_, ok := ByName("not_a_libc_function")
	assert.False(t, ok)
	assert.False(t, Invalid.Valid())
	assert.Equal(t, "", Invalid.Symbol())
}

func TestCanonicalSpellings(t *testing.T) {
	cases := map[ID]string{
		DunderStrdup:      "__strdup",
		DunderIsoc99Scanf: "__isoc99_scanf",
		UnderIOGetc:       "_IO_getc",
		MemcpyChk:         "__memcpy_chk",
		NvvmReflect:       "__nvvm_reflect",
		SincospifStret:    "__sincospif_stret",
		Sinpif:            "__sinpif",
		Strlen:            "strlen",
		VecMalloc:         "vec_malloc",
	}
	for id, want := range cases {
		assert.Equal(t, want, id.Symbol())
	}
}

func TestParseProto(t *testing.T) {
	p, err := ParseProto("int(ptr,size,...)")
	require.NoError(t, err)
	assert.Equal(t, SlotInt, p.Result)
	assert.Equal(t, []Slot{SlotPtr, SlotSize}, p.Params)
	assert.True(t, p.Variadic)

	p, err = ParseProto("int()")
	require.NoError(t, err)
	assert.Empty(t, p.Params)

	for _, bad := range []string{"", "int", "(ptr)", "int(void)", "int(...,ptr)", "quad(ptr)"} {
		_, err := ParseProto(bad)
		assert.Error(t, err, bad)
	}
}

func TestPrototypeFollowsTargetWidths(t *testing.T) {
	types := ir.NewTypes()
	linux := builtinInfo(t, "x86_64-linux-gnu")
	i386 := builtinInfo(t, "i386-linux-gnu")
	win := builtinInfo(t, "x86_64-windows-msvc")

	ty, ok := linux.Prototype(types, Strlen)
	require.True(t, ok)
	assert.Equal(t, "i64 (i8*)", types.String(ty))

	ty, _ = i386.Prototype(types, Strlen)
	assert.Equal(t, "i32 (i8*)", types.String(ty))

	ty, _ = win.Prototype(types, Atol)
	assert.Equal(t, "i32 (i8*)", types.String(ty))

	ty, _ = linux.Prototype(types, Snprintf)
	assert.Equal(t, "i32 (i8*, i64, i8*, ...)", types.String(ty))

	ty, _ = linux.Prototype(types, Sqrtl)
	assert.Equal(t, "x86_fp80 (x86_fp80)", types.String(ty))

	_, ok = linux.Prototype(types, Invalid)
	assert.False(t, ok)
}

func TestAvailabilityByOS(t *testing.T) {
	linux := builtinInfo(t, "x86_64-linux-gnu")
	darwin := builtinInfo(t, "aarch64-apple-darwin")
	aix := builtinInfo(t, "powerpc64-ibm-aix")
	cuda := builtinInfo(t, "nvptx64-nvidia-cuda")
	win := builtinInfo(t, "x86_64-windows-msvc")

	assert.True(t, linux.Has(Strlen))
	assert.True(t, linux.Has(DunderStrdup))
	assert.True(t, linux.Has(Fopen64))
	assert.False(t, linux.Has(MemsetPattern16))
	assert.False(t, linux.Has(VecMalloc))

	assert.True(t, darwin.Has(MemsetPattern16))
	assert.True(t, darwin.Has(Strlcpy))
	assert.False(t, darwin.Has(DunderStrdup))

	assert.True(t, aix.Has(VecMalloc))
	assert.True(t, aix.Has(VecFree))

	assert.True(t, cuda.Has(NvvmReflect))
	assert.True(t, cuda.Has(Sinf))
	assert.False(t, cuda.Has(Fopen))
	assert.False(t, linux.Has(NvvmReflect))

	assert.False(t, win.Has(Stpcpy))
	assert.False(t, win.Has(Read))
	assert.True(t, win.Has(Strcpy))
}

func TestProfileOverridesAndSetAvailable(t *testing.T) {
	p := target.X86_64LinuxGNU()
	p.Enable = []string{"strlcpy"}
	p.Disable = []string{"strdup"}
	ti, err := NewTargetInfo(p)
	require.NoError(t, err)
	assert.True(t, ti.Has(Strlcpy))
	assert.False(t, ti.Has(Strdup))

	ti.SetAvailable(Strdup, true)
	assert.True(t, ti.Has(Strdup))
	ti.SetAvailable(Invalid, true)
	assert.False(t, ti.Has(Invalid))

	p.Disable = []string{"strdupp"}
	_, err = NewTargetInfo(p)
	assert.True(t, errors.Is(err, ErrUnknownFunction))
}

func TestExtAttrPolicy(t *testing.T) {
	linux := builtinInfo(t, "x86_64-linux-gnu")
	s390 := builtinInfo(t, "s390x-linux-gnu")
	riscv := builtinInfo(t, "riscv64-linux-gnu")

	assert.Equal(t, ir.AttrNone, linux.ExtAttr(true))
	assert.Equal(t, ir.AttrSExt, s390.ExtAttr(true))
	assert.Equal(t, ir.AttrZExt, s390.ExtAttr(false))
	assert.Equal(t, ir.AttrSExt, riscv.ExtAttr(true))
	assert.Equal(t, ir.AttrSExt, riscv.ExtAttr(false))
}
