package ir

import "fmt"

// Builder appends instructions to the end of a block.
type Builder struct {
	block *Block
}

// NewBuilder positions a builder at the end of block.
func NewBuilder(block *Block) *Builder {
	if block == nil || block.parent == nil {
		panic("ir: builder needs a block attached to a function")
	}
	return &Builder{block: block}
}

// SetInsertPoint moves the builder to the end of block.
func (b *Builder) SetInsertPoint(block *Block) { b.block = block }

func (b *Builder) Block() *Block       { return b.block }
func (b *Builder) Function() *Function { return b.block.parent }
func (b *Builder) Module() *Module     { return b.block.parent.parent }
func (b *Builder) Types() *Types       { return b.Module().Types }

func (b *Builder) Int8Ty() TypeID  { return b.Types().Int(8) }
func (b *Builder) Int32Ty() TypeID { return b.Types().Int(32) }

// Int8PtrTy returns i8* in address space 0.
func (b *Builder) Int8PtrTy() TypeID { return b.Types().BytePtr(0) }

// IntPtrTy returns the pointer-sized integer of the module.
func (b *Builder) IntPtrTy() TypeID { return b.Module().IntPtrType() }

// ConstInt returns an integer constant of type ty.
func (b *Builder) ConstInt(ty TypeID, v int64) *ConstInt {
	if _, ok := b.Types().IsInt(ty); !ok {
		panic(fmt.Errorf("ir: ConstInt of non-integer type %s", b.Types().String(ty)))
	}
	return &ConstInt{typ: ty, V: v}
}

// Null returns the null constant of a pointer type.
func (b *Builder) Null(ty TypeID) *NullPtr {
	if !b.Types().IsPointer(ty) {
		panic(fmt.Errorf("ir: null of non-pointer type %s", b.Types().String(ty)))
	}
	return &NullPtr{typ: ty}
}

func (b *Builder) insert(in Instr) {
	b.block.Instrs = append(b.block.Instrs, in)
}

// CreateCall emits a call to fn. Argument count and the types of the fixed
// parameters must match the callee signature; a mismatch panics.
func (b *Builder) CreateCall(fn *Function, args []Value, name string) *Call {
	if err := CheckCallOperands(fn, args); err != nil {
		panic(err)
	}
	if fn.ReturnType() == b.Types().Void() {
		name = ""
	}
	c := &Call{
		block:  b.block,
		name:   b.Function().uniqueName(name),
		Callee: fn,
		Args:   append([]Value(nil), args...),
	}
	b.insert(c)
	return c
}

// CheckCallOperands validates args against fn's signature.
func CheckCallOperands(fn *Function, args []Value) error {
	info := fn.Signature()
	types := fn.parent.Types
	if len(args) < len(info.Params) || (!info.Variadic && len(args) != len(info.Params)) {
		return fmt.Errorf("ir: call to @%s with %d operands, signature %s", fn.name, len(args), types.String(fn.typ))
	}
	for i, p := range info.Params {
		if args[i] == nil {
			return fmt.Errorf("ir: call to @%s: operand %d is nil", fn.name, i)
		}
		if args[i].Type() != p {
			return fmt.Errorf("ir: call to @%s: operand %d has type %s, want %s",
				fn.name, i, types.String(args[i].Type()), types.String(p))
		}
	}
	return nil
}

// CreateBitCast reinterprets v as type to. Same-typed values are returned as is.
func (b *Builder) CreateBitCast(v Value, to TypeID, name string) Value {
	if v.Type() == to {
		return v
	}
	return b.cast(CastBit, v, to, name)
}

// CreateIntCast resizes an integer, sign- or zero-extending when widening.
func (b *Builder) CreateIntCast(v Value, to TypeID, signed bool, name string) Value {
	if v.Type() == to {
		return v
	}
	from, ok := b.Types().IsInt(v.Type())
	want, ok2 := b.Types().IsInt(to)
	if !ok || !ok2 {
		panic(fmt.Errorf("ir: int cast between %s and %s", b.Types().String(v.Type()), b.Types().String(to)))
	}
	switch {
	case from > want:
		return b.cast(CastTrunc, v, to, name)
	case signed:
		return b.cast(CastSExt, v, to, name)
	default:
		return b.cast(CastZExt, v, to, name)
	}
}

func (b *Builder) cast(op CastOp, v Value, to TypeID, name string) *Cast {
	if name == "" {
		name = "cast"
	}
	c := &Cast{block: b.block, name: b.Function().uniqueName(name), Op: op, Val: v, To: to}
	b.insert(c)
	return c
}

// CreateRet terminates the block; v is nil for void functions.
func (b *Builder) CreateRet(v Value) *Ret {
	r := &Ret{block: b.block, Val: v}
	b.insert(r)
	return r
}
