package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// SNPrintf emits snprintf(dst, size, fmt, args...).
func (c *CallBuilder) SNPrintf(dst, size, format ir.Value, args ...ir.Value) (ir.Value, error) {
	ops := append([]ir.Value{dst, size, format}, args...)
	return c.Emit(libfunc.Snprintf, c.i32(), []ir.TypeID{c.i8p(), size.Type(), c.i8p()}, ops, true)
}

// SPrintf emits sprintf(dst, fmt, args...).
func (c *CallBuilder) SPrintf(dst, format ir.Value, args ...ir.Value) (ir.Value, error) {
	ops := append([]ir.Value{dst, format}, args...)
	return c.Emit(libfunc.Sprintf, c.i32(), []ir.TypeID{c.i8p(), c.i8p()}, ops, true)
}

// VSNPrintf emits vsnprintf(dst, size, fmt, va).
func (c *CallBuilder) VSNPrintf(dst, size, format, va ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Vsnprintf, c.i32(), []ir.TypeID{c.i8p(), size.Type(), c.i8p(), va.Type()},
		[]ir.Value{dst, size, format, va}, false)
}

// VSPrintf emits vsprintf(dst, fmt, va).
func (c *CallBuilder) VSPrintf(dst, format, va ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Vsprintf, c.i32(), []ir.TypeID{c.i8p(), c.i8p(), va.Type()},
		[]ir.Value{dst, format, va}, false)
}

// PutChar emits putchar(ch), converting ch to i32 with sign extension.
func (c *CallBuilder) PutChar(ch ir.Value) (ir.Value, error) {
	return c.emit(callSpec{
		id:     libfunc.Putchar,
		ret:    c.i32(),
		params: []ir.TypeID{c.i32()},
		args: func() []ir.Value {
			return []ir.Value{c.b.CreateIntCast(ch, c.i32(), true, "chari")}
		},
	})
}

// PutS emits puts(str).
func (c *CallBuilder) PutS(str ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Puts, c.i32(), []ir.TypeID{c.i8p()}, []ir.Value{str}, false)
}

// FPutC emits fputc(ch, file).
func (c *CallBuilder) FPutC(ch, file ir.Value) (ir.Value, error) {
	return c.emit(callSpec{
		id:     libfunc.Fputc,
		ret:    c.i32(),
		params: []ir.TypeID{c.i32(), file.Type()},
		args: func() []ir.Value {
			return []ir.Value{c.b.CreateIntCast(ch, c.i32(), true, "chari"), file}
		},
	})
}

// FPutS emits fputs(str, file).
func (c *CallBuilder) FPutS(str, file ir.Value) (ir.Value, error) {
	return c.emit(callSpec{
		id:     libfunc.Fputs,
		ret:    c.i32(),
		params: []ir.TypeID{c.i8p(), file.Type()},
		args:   fixedArgs([]ir.Value{str, file}),
	})
}

// FWrite emits fwrite(ptr, size, 1, file). The call is unnamed.
func (c *CallBuilder) FWrite(ptr, size, file ir.Value) (ir.Value, error) {
	return c.emit(callSpec{
		id:     libfunc.Fwrite,
		ret:    c.intPtr(),
		params: []ir.TypeID{c.i8p(), c.intPtr(), c.intPtr(), file.Type()},
		args: func() []ir.Value {
			return []ir.Value{ptr, size, c.b.ConstInt(c.intPtr(), 1), file}
		},
		unnamed: true,
	})
}
