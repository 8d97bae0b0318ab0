package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// MemCpyChk emits __memcpy_chk(dst, src, n, objSize). A declaration created
// here is marked nounwind up front. The call is unnamed.
func (c *CallBuilder) MemCpyChk(dst, src, n, objSize ir.Value) (ir.Value, error) {
	var attrs ir.AttrList
	attrs.Fn.Add(ir.AttrNoUnwind)
	return c.emit(callSpec{
		id:      libfunc.MemcpyChk,
		ret:     c.i8p(),
		params:  []ir.TypeID{c.i8p(), c.i8p(), c.intPtr(), c.intPtr()},
		args:    fixedArgs([]ir.Value{dst, src, n, objSize}),
		unnamed: true,
		fnAttrs: &attrs,
	})
}

// MemPCpy emits mempcpy(dst, src, n).
func (c *CallBuilder) MemPCpy(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Mempcpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{dst, src, n}, false)
}

// MemChr emits memchr(ptr, val, n). val is an i32.
func (c *CallBuilder) MemChr(ptr, val, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memchr, c.i8p(), []ir.TypeID{c.i8p(), c.i32(), c.intPtr()},
		[]ir.Value{ptr, val, n}, false)
}

// MemCmp emits memcmp(p1, p2, n).
func (c *CallBuilder) MemCmp(p1, p2, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memcmp, c.i32(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{p1, p2, n}, false)
}

// BCmp emits bcmp(p1, p2, n).
func (c *CallBuilder) BCmp(p1, p2, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Bcmp, c.i32(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{p1, p2, n}, false)
}

// MemCCpy emits memccpy(dst, src, val, n). val is an i32 and n keeps its
// own type.
func (c *CallBuilder) MemCCpy(dst, src, val, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memccpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), c.i32(), n.Type()},
		[]ir.Value{dst, src, val, n}, false)
}

// MemCpy emits memcpy(dst, src, n).
func (c *CallBuilder) MemCpy(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memcpy, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{dst, src, n}, false)
}

// MemMove emits memmove(dst, src, n).
func (c *CallBuilder) MemMove(dst, src, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memmove, c.i8p(), []ir.TypeID{c.i8p(), c.i8p(), c.intPtr()},
		[]ir.Value{dst, src, n}, false)
}

// MemSet emits memset(dst, val, n). val is an i32.
func (c *CallBuilder) MemSet(dst, val, n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Memset, c.i8p(), []ir.TypeID{c.i8p(), c.i32(), c.intPtr()},
		[]ir.Value{dst, val, n}, false)
}

// Malloc emits malloc(n).
func (c *CallBuilder) Malloc(n ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Malloc, c.i8p(), []ir.TypeID{c.intPtr()}, []ir.Value{n}, false)
}

// Calloc emits calloc(num, size).
func (c *CallBuilder) Calloc(num, size ir.Value) (ir.Value, error) {
	return c.Emit(libfunc.Calloc, c.i8p(), []ir.TypeID{c.intPtr(), c.intPtr()},
		[]ir.Value{num, size}, false)
}
