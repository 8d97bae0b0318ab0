package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// floatKind returns the format of ty. Non-float and half-precision
// operands have no library variant and are caller bugs.
func floatKind(types *ir.Types, op string, ty ir.TypeID) ir.FloatKind {
	kind, ok := types.FloatKindOf(ty)
	if !ok {
		violate(op, "%s is not a floating-point type", types.String(ty))
	}
	if kind == ir.FloatHalf {
		violate(op, "no library variant for half")
	}
	return kind
}

// floatSuffix maps a format to the C suffix of its math variant.
func floatSuffix(kind ir.FloatKind) string {
	switch kind {
	case ir.FloatDouble:
		return ""
	case ir.FloatSingle:
		return "f"
	}
	return "l"
}

func pickFloatID(kind ir.FloatKind, dbl, flt, ldbl libfunc.ID) libfunc.ID {
	switch kind {
	case ir.FloatDouble:
		return dbl
	case ir.FloatSingle:
		return flt
	}
	return ldbl
}

// HasFloatFn reports whether the variant of dbl/flt/ldbl matching ty can
// be emitted into m. Half never has one.
func (r *Resolver) HasFloatFn(m *ir.Module, ty ir.TypeID, dbl, flt, ldbl libfunc.ID) bool {
	kind, ok := m.Types.FloatKindOf(ty)
	if !ok || kind == ir.FloatHalf {
		return false
	}
	return r.Emittable(m, pickFloatID(kind, dbl, flt, ldbl))
}

// FloatFn returns the variant matching ty. The caller must have checked
// HasFloatFn.
func (r *Resolver) FloatFn(m *ir.Module, ty ir.TypeID, dbl, flt, ldbl libfunc.ID) libfunc.ID {
	if !r.HasFloatFn(m, ty, dbl, flt, ldbl) {
		violate("float variant", "no usable variant of %s for %s", r.reg.Name(dbl), m.Types.String(ty))
	}
	kind, _ := m.Types.FloatKindOf(ty)
	return pickFloatID(kind, dbl, flt, ldbl)
}

// UnaryFloatCall emits name(op), where name is the double-precision base
// name and the suffix follows op's format: sin, sinf or sinl. attrs are
// copied onto the call without speculatable.
func (c *CallBuilder) UnaryFloatCall(op ir.Value, name string, attrs ir.AttrList) (ir.Value, error) {
	kind := floatKind(c.types(), "unary float call", op.Type())
	id, ok := c.r.reg.Lookup(name + floatSuffix(kind))
	if !ok {
		return nil, unavailable(name + floatSuffix(kind))
	}
	return c.floatCall(id, []ir.Value{op}, attrs)
}

// UnaryFloatCallFor emits the variant of dbl/flt/ldbl matching op.
func (c *CallBuilder) UnaryFloatCallFor(op ir.Value, dbl, flt, ldbl libfunc.ID, attrs ir.AttrList) (ir.Value, error) {
	kind := floatKind(c.types(), "unary float call", op.Type())
	return c.floatCall(pickFloatID(kind, dbl, flt, ldbl), []ir.Value{op}, attrs)
}

// BinaryFloatCall emits name(op1, op2) with the suffix chosen by op1.
func (c *CallBuilder) BinaryFloatCall(op1, op2 ir.Value, name string, attrs ir.AttrList) (ir.Value, error) {
	kind := floatKind(c.types(), "binary float call", op1.Type())
	id, ok := c.r.reg.Lookup(name + floatSuffix(kind))
	if !ok {
		return nil, unavailable(name + floatSuffix(kind))
	}
	return c.floatCall(id, []ir.Value{op1, op2}, attrs)
}

// BinaryFloatCallFor emits the variant of dbl/flt/ldbl matching op1.
func (c *CallBuilder) BinaryFloatCallFor(op1, op2 ir.Value, dbl, flt, ldbl libfunc.ID, attrs ir.AttrList) (ir.Value, error) {
	kind := floatKind(c.types(), "binary float call", op1.Type())
	return c.floatCall(pickFloatID(kind, dbl, flt, ldbl), []ir.Value{op1, op2}, attrs)
}

func (c *CallBuilder) floatCall(id libfunc.ID, ops []ir.Value, attrs ir.AttrList) (ir.Value, error) {
	ty := ops[0].Type()
	params := make([]ir.TypeID, len(ops))
	for i := range params {
		params[i] = ty
	}
	v, err := c.Emit(id, ty, params, ops, false)
	if err != nil {
		return nil, err
	}
	call := v.(*ir.Call)
	call.Attrs = attrs.WithoutFnAttr(ir.AttrSpeculatable)
	return call, nil
}
