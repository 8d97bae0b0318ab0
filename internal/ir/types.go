package ir

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// TypeID uniquely identifies a type inside a Types table.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates the type kinds the IR understands.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindInt
	KindFloat
	KindPointer
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPointer:
		return "pointer"
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// FloatKind selects one of the floating-point formats.
type FloatKind uint8

const (
	FloatHalf FloatKind = iota + 1
	FloatSingle
	FloatDouble
	FloatX86FP80
	FloatFP128
	FloatPPCFP128
)

// Bits reports the storage width of the format.
func (k FloatKind) Bits() int {
	switch k {
	case FloatHalf:
		return 16
	case FloatSingle:
		return 32
	case FloatDouble:
		return 64
	case FloatX86FP80:
		return 80
	case FloatFP128, FloatPPCFP128:
		return 128
	default:
		return 0
	}
}

func (k FloatKind) String() string {
	switch k {
	case FloatHalf:
		return "half"
	case FloatSingle:
		return "float"
	case FloatDouble:
		return "double"
	case FloatX86FP80:
		return "x86_fp80"
	case FloatFP128:
		return "fp128"
	case FloatPPCFP128:
		return "ppc_fp128"
	default:
		return fmt.Sprintf("FloatKind(%d)", k)
	}
}

// ParseFloatKind maps a textual format name back to its kind.
func ParseFloatKind(s string) (FloatKind, error) {
	switch strings.ToLower(s) {
	case "half":
		return FloatHalf, nil
	case "float":
		return FloatSingle, nil
	case "double":
		return FloatDouble, nil
	case "x86_fp80":
		return FloatX86FP80, nil
	case "fp128":
		return FloatFP128, nil
	case "ppc_fp128":
		return FloatPPCFP128, nil
	default:
		return 0, fmt.Errorf("unknown float format %q", s)
	}
}

// Type is a compact structural descriptor.
type Type struct {
	Kind      Kind
	Bits      uint16    // integer width
	Float     FloatKind // float format
	Elem      TypeID    // pointee
	AddrSpace uint32    // pointer address space
	Payload   uint32    // FuncInfo slot
}

// FuncInfo describes a function type.
type FuncInfo struct {
	Result   TypeID
	Params   []TypeID
	Variadic bool
}

// Types interns descriptors so that structurally equal types share a TypeID.
type Types struct {
	types   []Type
	index   map[Type]TypeID
	fns     []FuncInfo
	fnIndex map[string]TypeID
	void    TypeID
}

// NewTypes constructs an empty table with void pre-registered.
func NewTypes() *Types {
	t := &Types{
		index:   make(map[Type]TypeID, 32),
		fnIndex: make(map[string]TypeID, 32),
	}
	t.types = append(t.types, Type{}) // reserve 0 as NoTypeID
	t.void = t.intern(Type{Kind: KindVoid})
	return t
}

func (t *Types) intern(ty Type) TypeID {
	if id, ok := t.index[ty]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(t.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	t.types = append(t.types, ty)
	t.index[ty] = id
	return id
}

// Void returns the void type.
func (t *Types) Void() TypeID { return t.void }

// Int returns the integer type of the given width.
func (t *Types) Int(bits int) TypeID {
	w, err := safecast.Conv[uint16](bits)
	if err != nil || w == 0 {
		panic(fmt.Errorf("invalid integer width %d", bits))
	}
	return t.intern(Type{Kind: KindInt, Bits: w})
}

// Float returns the floating-point type of the given format.
func (t *Types) Float(kind FloatKind) TypeID {
	if kind.Bits() == 0 {
		panic(fmt.Errorf("invalid float kind %d", kind))
	}
	return t.intern(Type{Kind: KindFloat, Float: kind})
}

// Pointer returns a pointer to elem in the given address space.
func (t *Types) Pointer(elem TypeID, addrSpace uint32) TypeID {
	return t.intern(Type{Kind: KindPointer, Elem: elem, AddrSpace: addrSpace})
}

// BytePtr returns the canonical byte pointer (i8*) for an address space.
func (t *Types) BytePtr(addrSpace uint32) TypeID {
	return t.Pointer(t.Int(8), addrSpace)
}

// Func returns the function type with the given shape.
func (t *Types) Func(result TypeID, params []TypeID, variadic bool) TypeID {
	key := fnKey(result, params, variadic)
	if id, ok := t.fnIndex[key]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(t.fns))
	if err != nil {
		panic(fmt.Errorf("fn info overflow: %w", err))
	}
	t.fns = append(t.fns, FuncInfo{
		Result:   result,
		Params:   append([]TypeID(nil), params...),
		Variadic: variadic,
	})
	id := t.intern(Type{Kind: KindFunc, Payload: slot})
	t.fnIndex[key] = id
	return id
}

func fnKey(result TypeID, params []TypeID, variadic bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d(", result)
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", p)
	}
	if variadic {
		sb.WriteString(",...")
	}
	sb.WriteByte(')')
	return sb.String()
}

// Lookup returns the descriptor for id.
func (t *Types) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(t.types) {
		return Type{}, false
	}
	return t.types[id], true
}

// MustLookup panics when id is invalid.
func (t *Types) MustLookup(id TypeID) Type {
	ty, ok := t.Lookup(id)
	if !ok {
		panic("ir: invalid TypeID")
	}
	return ty
}

// FuncInfo returns the signature behind a function type.
func (t *Types) FuncInfo(id TypeID) (*FuncInfo, bool) {
	ty, ok := t.Lookup(id)
	if !ok || ty.Kind != KindFunc || int(ty.Payload) >= len(t.fns) {
		return nil, false
	}
	return &t.fns[ty.Payload], true
}

// IsInt reports whether id is an integer type, and its width.
func (t *Types) IsInt(id TypeID) (int, bool) {
	ty, ok := t.Lookup(id)
	if !ok || ty.Kind != KindInt {
		return 0, false
	}
	return int(ty.Bits), true
}

// IsPointer reports whether id is a pointer type.
func (t *Types) IsPointer(id TypeID) bool {
	ty, ok := t.Lookup(id)
	return ok && ty.Kind == KindPointer
}

// FloatKindOf returns the float format of id, if it is a float type.
func (t *Types) FloatKindOf(id TypeID) (FloatKind, bool) {
	ty, ok := t.Lookup(id)
	if !ok || ty.Kind != KindFloat {
		return 0, false
	}
	return ty.Float, true
}

// String renders id in the textual IR syntax.
func (t *Types) String(id TypeID) string {
	ty, ok := t.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch ty.Kind {
	case KindVoid:
		return "void"
	case KindInt:
		return fmt.Sprintf("i%d", ty.Bits)
	case KindFloat:
		return ty.Float.String()
	case KindPointer:
		if ty.AddrSpace != 0 {
			return fmt.Sprintf("%s addrspace(%d)*", t.String(ty.Elem), ty.AddrSpace)
		}
		return t.String(ty.Elem) + "*"
	case KindFunc:
		info := &t.fns[ty.Payload]
		parts := make([]string, 0, len(info.Params)+1)
		for _, p := range info.Params {
			parts = append(parts, t.String(p))
		}
		if info.Variadic {
			parts = append(parts, "...")
		}
		return fmt.Sprintf("%s (%s)", t.String(info.Result), strings.Join(parts, ", "))
	default:
		return "<invalid>"
	}
}
