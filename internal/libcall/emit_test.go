package libcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

func TestStrLenCastsPointerOperand(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	v, err := f.cb.StrLen(f.arg(argI32Ptr))
	require.NoError(t, err)

	call := v.(*ir.Call)
	assert.Equal(t, "strlen", call.Callee.Name())
	assert.Equal(t, f.m.IntPtrType(), call.Type())
	text := f.m.String()
	assert.Contains(t, text, "%cstr = bitcast i32* %p to i8*")
	assert.Contains(t, text, "%strlen = call i64 @strlen(i8* %cstr)")
}

func TestStrDupUnavailableAddsNothing(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	f.ti.SetAvailable(libfunc.Strdup, false)
	globals := len(f.m.Globals())

	v, err := f.cb.StrDup(f.arg(argI32Ptr))
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Len(t, f.m.Globals(), globals)
	assert.Zero(t, f.instrCount(), "no cast may be left behind")
}

func TestBuildersCallTheirFunction(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	s, n := f.arg(argStr), f.arg(argLen)
	zero := f.cb.IR().ConstInt(f.cb.IR().Int32Ty(), 0)

	cases := []struct {
		want  string
		build func() (ir.Value, error)
	}{
		{"strdup", func() (ir.Value, error) { return f.cb.StrDup(s) }},
		{"strcmp", func() (ir.Value, error) { return f.cb.StrCmp(s, s) }},
		{"strncmp", func() (ir.Value, error) { return f.cb.StrNCmp(s, s, n) }},
		{"strcpy", func() (ir.Value, error) { return f.cb.StrCpy(s, s) }},
		{"stpcpy", func() (ir.Value, error) { return f.cb.StpCpy(s, s) }},
		{"strncpy", func() (ir.Value, error) { return f.cb.StrNCpy(s, s, n) }},
		{"stpncpy", func() (ir.Value, error) { return f.cb.StpNCpy(s, s, n) }},
		{"strcat", func() (ir.Value, error) { return f.cb.StrCat(s, s) }},
		{"strncat", func() (ir.Value, error) { return f.cb.StrNCat(s, s, n) }},
		{"mempcpy", func() (ir.Value, error) { return f.cb.MemPCpy(s, s, n) }},
		{"memchr", func() (ir.Value, error) { return f.cb.MemChr(s, zero, n) }},
		{"memcmp", func() (ir.Value, error) { return f.cb.MemCmp(s, s, n) }},
		{"bcmp", func() (ir.Value, error) { return f.cb.BCmp(s, s, n) }},
		{"memccpy", func() (ir.Value, error) { return f.cb.MemCCpy(s, s, zero, n) }},
		{"memcpy", func() (ir.Value, error) { return f.cb.MemCpy(s, s, n) }},
		{"memmove", func() (ir.Value, error) { return f.cb.MemMove(s, s, n) }},
		{"memset", func() (ir.Value, error) { return f.cb.MemSet(s, zero, n) }},
		{"sprintf", func() (ir.Value, error) { return f.cb.SPrintf(s, s, n) }},
		{"snprintf", func() (ir.Value, error) { return f.cb.SNPrintf(s, n, s) }},
		{"vsprintf", func() (ir.Value, error) { return f.cb.VSPrintf(s, s, s) }},
		{"vsnprintf", func() (ir.Value, error) { return f.cb.VSNPrintf(s, n, s, s) }},
		{"puts", func() (ir.Value, error) { return f.cb.PutS(s) }},
		{"malloc", func() (ir.Value, error) { return f.cb.Malloc(n) }},
		{"calloc", func() (ir.Value, error) { return f.cb.Calloc(n, n) }},
	}
	for _, tc := range cases {
		v, err := tc.build()
		require.NoError(t, err, tc.want)
		call, ok := v.(*ir.Call)
		require.True(t, ok, tc.want)
		assert.Equal(t, tc.want, call.Callee.Name())
		assert.Equal(t, tc.want, call.Name())
		assert.False(t, call.Callee.Attrs.Fn.Empty(), tc.want)
	}

	sprintf := f.m.Function("sprintf")
	assert.Equal(t, "i32 (i8*, i8*, ...)", f.m.Types.String(sprintf.Type()))
	assert.Equal(t, 0, f.instrCount()-len(cases), "string operands need no casts")
}

func TestBSDOnlyBuildersUnavailableOnLinux(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	s, n := f.arg(argStr), f.arg(argLen)
	_, err := f.cb.StrLCpy(s, s, n)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = f.cb.StrLCat(s, s, n)
	assert.ErrorIs(t, err, ErrUnavailable)

	d := newFixture(t, "aarch64-apple-darwin")
	v, err := d.cb.StrLCpy(d.arg(argStr), d.arg(argStr), d.arg(argLen))
	require.NoError(t, err)
	assert.Equal(t, d.m.IntPtrType(), v.Type())
}

func TestStrChrPassesPromotedChar(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	v, err := f.cb.StrChr(f.arg(argStr), 0xff)
	require.NoError(t, err)
	ch := v.(*ir.Call).Args[1].(*ir.ConstInt)
	assert.Equal(t, int64(-1), ch.V)

	v, _ = f.cb.StrChr(f.arg(argStr), '/')
	assert.Equal(t, int64('/'), v.(*ir.Call).Args[1].(*ir.ConstInt).V)
}

func TestCallCopiesCallingConvention(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	decl := f.declare(t, libfunc.Strlen)
	decl.CallConv = ir.CallConvFast

	v, err := f.cb.StrLen(f.arg(argStr))
	require.NoError(t, err)
	assert.Equal(t, ir.CallConvFast, v.(*ir.Call).CallConv)
	assert.Same(t, decl, v.(*ir.Call).Callee)
}

func TestMemCpyChkIsUnnamedAndNoUnwind(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	s, n := f.arg(argStr), f.arg(argLen)
	v, err := f.cb.MemCpyChk(s, s, n, n)
	require.NoError(t, err)

	call := v.(*ir.Call)
	assert.Empty(t, call.Name())
	assert.True(t, call.Callee.Attrs.Fn.Has(ir.AttrNoUnwind))
	assert.False(t, call.Callee.Attrs.Fn.Has(ir.AttrWillReturn))
}

func TestPutCharSignExtends(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	v, err := f.cb.PutChar(f.arg(argChar))
	require.NoError(t, err)

	instrs := f.caller.Blocks()[0].Instrs
	require.Len(t, instrs, 2)
	cast := instrs[0].(*ir.Cast)
	assert.Equal(t, ir.CastSExt, cast.Op)
	assert.Equal(t, "%chari", cast.Ref())
	assert.Equal(t, "putchar", v.(*ir.Call).Name())
}

func TestFileBuildersInferOnlyForPointerFiles(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	_, err := f.cb.FPutS(f.arg(argStr), f.arg(argLen))
	require.NoError(t, err)
	assert.True(t, f.m.Function("fputs").Attrs.Fn.Empty())

	_, err = f.cb.FPutC(f.arg(argChar), f.arg(argLen))
	require.NoError(t, err)
	assert.True(t, f.m.Function("fputc").Attrs.Fn.Empty())

	g := newFixture(t, "x86_64-linux-gnu")
	_, err = g.cb.FPutS(g.arg(argStr), g.arg(argStr))
	require.NoError(t, err)
	fputs := g.m.Function("fputs")
	assert.True(t, fputs.Attrs.Fn.Has(ir.AttrNoUnwind))
	assert.True(t, fputs.Attrs.HasParam(1, ir.AttrNoCapture))
}

func TestFWritePassesOneItem(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	v, err := f.cb.FWrite(f.arg(argI32Ptr), f.arg(argLen), f.arg(argStr))
	require.NoError(t, err)

	call := v.(*ir.Call)
	assert.Empty(t, call.Name())
	assert.Equal(t, int64(1), call.Args[2].(*ir.ConstInt).V)
	assert.Equal(t, "i64 (i8*, i64, i64, i8*)", f.m.Types.String(call.Callee.Type()))
	assert.True(t, call.Callee.Attrs.HasParam(3, ir.AttrNoCapture))
}

func TestOperandMismatchIsAViolation(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	requireViolation(t, func() {
		_, _ = f.cb.MemCmp(f.arg(argStr), f.arg(argStr), f.arg(argChar))
	})
	requireViolation(t, func() { f.cb.CastToCStr(f.arg(argLen)) })
}

func TestUnaryFloatCallPicksVariant(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")

	cases := []struct {
		arg  int
		want string
	}{
		{argFloat, "sinf"},
		{argDouble, "sin"},
		{argLongDouble, "sinl"},
	}
	for _, tc := range cases {
		v, err := f.cb.UnaryFloatCall(f.arg(tc.arg), "sin", ir.AttrList{})
		require.NoError(t, err, tc.want)
		call := v.(*ir.Call)
		assert.Equal(t, tc.want, call.Callee.Name())
		assert.Equal(t, f.arg(tc.arg).Type(), call.Type())
	}

	requireViolation(t, func() { _, _ = f.cb.UnaryFloatCall(f.arg(argHalf), "sin", ir.AttrList{}) })
	requireViolation(t, func() { _, _ = f.cb.UnaryFloatCall(f.arg(argLen), "sin", ir.AttrList{}) })

	_, err := f.cb.UnaryFloatCall(f.arg(argDouble), "frobnicate", ir.AttrList{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFloatCallsDropSpeculatable(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	var attrs ir.AttrList
	attrs.Fn.Add(ir.AttrSpeculatable)
	attrs.Fn.Add(ir.AttrReadNone)

	v, err := f.cb.UnaryFloatCallFor(f.arg(argDouble), libfunc.Cos, libfunc.Cosf, libfunc.Cosl, attrs)
	require.NoError(t, err)
	call := v.(*ir.Call)
	assert.Equal(t, "cos", call.Callee.Name())
	assert.True(t, call.Attrs.Fn.Has(ir.AttrReadNone))
	assert.False(t, call.Attrs.Fn.Has(ir.AttrSpeculatable))
	assert.True(t, attrs.Fn.Has(ir.AttrSpeculatable), "caller attributes are copied")
}

func TestBinaryFloatCalls(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	x := f.arg(argFloat)

	v, err := f.cb.BinaryFloatCallFor(x, x, libfunc.Pow, libfunc.Powf, libfunc.Powl, ir.AttrList{})
	require.NoError(t, err)
	assert.Equal(t, "powf", v.(*ir.Call).Callee.Name())

	v, err = f.cb.BinaryFloatCall(f.arg(argDouble), f.arg(argDouble), "fmod", ir.AttrList{})
	require.NoError(t, err)
	assert.Equal(t, "fmod", v.(*ir.Call).Callee.Name())

	requireViolation(t, func() {
		_, _ = f.cb.BinaryFloatCall(f.arg(argDouble), x, "atan2", ir.AttrList{})
	})
}

func TestHasFloatFn(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	types := f.m.Types
	flt := types.Float(ir.FloatSingle)

	assert.True(t, f.r.HasFloatFn(f.m, flt, libfunc.Sin, libfunc.Sinf, libfunc.Sinl))
	assert.Equal(t, libfunc.Sinf, f.r.FloatFn(f.m, flt, libfunc.Sin, libfunc.Sinf, libfunc.Sinl))
	assert.False(t, f.r.HasFloatFn(f.m, types.Float(ir.FloatHalf), libfunc.Sin, libfunc.Sinf, libfunc.Sinl))
	assert.False(t, f.r.HasFloatFn(f.m, types.Int(32), libfunc.Sin, libfunc.Sinf, libfunc.Sinl))

	f.ti.SetAvailable(libfunc.Sinf, false)
	assert.False(t, f.r.HasFloatFn(f.m, flt, libfunc.Sin, libfunc.Sinf, libfunc.Sinl))
	requireViolation(t, func() { f.r.FloatFn(f.m, flt, libfunc.Sin, libfunc.Sinf, libfunc.Sinl) })

	_, err := f.cb.UnaryFloatCallFor(f.arg(argFloat), libfunc.Sin, libfunc.Sinf, libfunc.Sinl, ir.AttrList{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenericEmitVariadic(t *testing.T) {
	f := newFixture(t, "x86_64-linux-gnu")
	b := f.cb.IR()
	v, err := f.cb.Emit(libfunc.Printf, b.Int32Ty(), []ir.TypeID{b.Int8PtrTy()},
		[]ir.Value{f.arg(argI32Ptr), f.arg(argDouble), f.arg(argLen)}, true)
	require.NoError(t, err)

	call := v.(*ir.Call)
	assert.Len(t, call.Args, 3)
	assert.Equal(t, b.Int8PtrTy(), call.Args[0].Type())
	assert.Contains(t, f.m.String(), "call i32 (i8*, ...) @printf(i8* %cstr, double %d, i64 %n)")
}
