package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// StrLen emits strlen(ptr).
func (c *CallBuilder) StrLen(ptr ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strlen, c.intPtr(), []ir.TypeID{c.i8p()}, []ir.Value{ptr}, false)
}

// StrDup emits strdup(ptr).
func (c *CallBuilder) StrDup(ptr ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strdup, c.i8p(), []ir.TypeID{c.i8p()}, []ir.Value{ptr}, false)
}

// StrChr emits strchr(ptr, ch). The character is passed as a C char
// promoted to int, so bytes above 0x7f become negative.
func (c *CallBuilder) StrChr(ptr ir.Value, ch byte) (ir.Value, error) {
	return c.emit(callSpec{
		id:     libfunc.Strchr,
		ret:    c.i8p(),
		params: []ir.TypeID{c.i8p(), c.i32()},
		args: func() []ir.Value {
			return []ir.Value{ptr, c.b.ConstInt(c.i32(), int64(int8(ch)))}
		},
	})
}

// StrCmp emits strcmp(p1, p2).
func (c *CallBuilder) StrCmp(p1, p2 ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strcmp, c.i32(), []ir.TypeID{c.i8p(), c.i8p()}, []ir.Value{p1, p2}, false)
}

// StrNCmp emits strncmp(p1, p2, n) with n of the pointer-sized integer type.
func (c *CallBuilder) StrNCmp(p1, p2, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strncmp, c.i32(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{p1, p2, n}, false)
}

// StrCpy emits strcpy(dst, src).
func (c *CallBuilder) StrCpy(dst, src ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strcpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p()}, []ir.Value{dst, src}, false)
}

// StpCpy emits stpcpy(dst, src).
func (c *CallBuilder) StpCpy(dst, src ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Stpcpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p()}, []ir.Value{dst, src}, false)
}

// StrNCpy emits strncpy(dst, src, n). The count keeps its own type.
func (c *CallBuilder) StrNCpy(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strncpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), n.Type()},
		[]ir.Value{dst, src, n}, false)
}

// StpNCpy emits stpncpy(dst, src, n).
func (c *CallBuilder) StpNCpy(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Stpncpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), n.Type()},
		[]ir.Value{dst, src, n}, false)
}

// StrCat emits strcat(dst, src).
func (c *CallBuilder) StrCat(dst, src ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strcat, c.i8p(), []ir.TypeID{c.i8p(), c.i8p()}, []ir.Value{dst, src}, false)
}

// StrNCat emits strncat(dst, src, n).
func (c *CallBuilder) StrNCat(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strncat, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), n.Type()},
		[]ir.Value{dst, src, n}, false)
}

// StrLCpy emits strlcpy(dst, src, size), which returns a size_t of the
// same type as size.
func (c *CallBuilder) StrLCpy(dst, src, size ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strlcpy, size.Type(), []ir.TypeID{c.i8p(), c.i8p(), size.Type()},
		[]ir.Value{dst, src, size}, false)
}

// StrLCat emits strlcat(dst, src, size).
func (c *CallBuilder) StrLCat(dst, src, size ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Strlcat, size.Type(), []ir.TypeID{c.i8p(), c.i8p(), size.Type()},
		[]ir.Value{dst, src, size}, false)
}
