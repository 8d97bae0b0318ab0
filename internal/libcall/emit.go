package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// CallBuilder emits calls to library functions at an IR builder's insertion
// point. Every Emit* method returns ErrUnavailable, and leaves the module
// untouched, when the function cannot be used on the target.
type CallBuilder struct {
	b *ir.Builder
	r *Resolver
}

// NewCallBuilder pairs an IR builder with a resolver.
func NewCallBuilder(b *ir.Builder, r *Resolver) *CallBuilder {
	return &CallBuilder{b: b, r: r}
}

// IR returns the underlying builder.
func (c *CallBuilder) IR() *ir.Builder { return c.b }

// Resolver returns the resolver used for declarations.
func (c *CallBuilder) Resolver() *Resolver { return c.r }

func (c *CallBuilder) types() *ir.Types { return c.b.Types() }

func (c *CallBuilder) module() *ir.Module { return c.b.Module() }

// CastToCStr reinterprets a pointer as i8* in the same address space.
func (c *CallBuilder) CastToCStr(v ir.Value) ir.Value {
	ty, ok := c.types().Lookup(v.Type())
	if !ok || ty.Kind != ir.KindPointer {
		violate("cast", "%s is not a pointer", c.types().String(v.Type()))
	}
	return c.b.CreateBitCast(v, c.types().BytePtr(ty.AddrSpace), "cstr")
}

// Emit declares id with the given signature if needed and calls it with
// args. Pointer operands passed for byte-pointer parameters are cast.
// The call is named after the function.
func (c *CallBuilder) Emit(id libfunc.ID, ret ir.TypeID, params []ir.TypeID, args []ir.Value, variadic bool) (ir.Value, error) {
	return c.emit(callSpec{id: id, ret: ret, params: params, variadic: variadic, args: fixedArgs(args)})
}

// callSpec describes one library call. args runs only after the
// declaration resolved, so unavailable functions leave no casts behind.
type callSpec struct {
	id       libfunc.ID
	ret      ir.TypeID
	params   []ir.TypeID
	variadic bool
	args     func() []ir.Value

	unnamed bool
	fnAttrs *ir.AttrList
}

func fixedArgs(args []ir.Value) func() []ir.Value {
	return func() []ir.Value { return args }
}

func (c *CallBuilder) emit(s callSpec) (ir.Value, error) {
	fnType := c.types().Func(s.ret, s.params, s.variadic)
	fn, err := c.r.resolve(c.module(), s.id, fnType, s.fnAttrs)
	if err != nil {
		return nil, err
	}
	name := fn.Name()
	if s.unnamed {
		name = ""
	}
	return c.call(fn, c.normalize(fn, s.args()), name), nil
}

// normalize casts pointer operands to the byte-pointer type of the
// corresponding fixed parameter.
func (c *CallBuilder) normalize(fn *ir.Function, args []ir.Value) []ir.Value {
	types := c.types()
	params := fn.Signature().Params
	out := make([]ir.Value, len(args))
	copy(out, args)
	for i, p := range params {
		if i >= len(out) || out[i] == nil || out[i].Type() == p {
			continue
		}
		if isBytePtr(types, p) && types.IsPointer(out[i].Type()) {
			out[i] = c.CastToCStr(out[i])
		}
	}
	return out
}

func isBytePtr(types *ir.Types, id ir.TypeID) bool {
	ty, ok := types.Lookup(id)
	if !ok || ty.Kind != ir.KindPointer {
		return false
	}
	bits, ok := types.IsInt(ty.Elem)
	return ok && bits == 8
}

// call emits the instruction. Operand mismatches are caller bugs.
func (c *CallBuilder) call(fn *ir.Function, args []ir.Value, name string) *ir.Call {
	if err := ir.CheckCallOperands(fn, args); err != nil {
		violate("call", "%v", err)
	}
	call := c.b.CreateCall(fn, args, name)
	call.CallConv = fn.CallConv
	return call
}

func (c *CallBuilder) i8p() ir.TypeID { return c.b.Int8PtrTy() }

func (c *CallBuilder) i32() ir.TypeID { return c.b.Int32Ty() }

func (c *CallBuilder) intPtr() ir.TypeID { return c.b.IntPtrTy() }
