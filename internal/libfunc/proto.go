package libfunc

import (
	"fmt"
	"strings"

	"libcall/internal/ir"
)

// Slot is one C type position in a prototype pattern. Integer slots whose
// width depends on the target (int, long, size_t) resolve through Widths.
type Slot uint8

const (
	SlotVoid Slot = iota + 1
	SlotI16
	SlotI32
	SlotInt
	SlotLong
	SlotLLong
	SlotSize
	SlotPtr
	SlotDouble
	SlotFloat
	SlotLDouble
)

var slotNames = map[string]Slot{
	"void":    SlotVoid,
	"i16":     SlotI16,
	"i32":     SlotI32,
	"int":     SlotInt,
	"long":    SlotLong,
	"llong":   SlotLLong,
	"size":    SlotSize,
	"ptr":     SlotPtr,
	"double":  SlotDouble,
	"float":   SlotFloat,
	"ldouble": SlotLDouble,
}

// Signed reports whether the slot is a signed C integer.
func (s Slot) Signed() bool {
	switch s {
	case SlotInt, SlotLong, SlotLLong:
		return true
	}
	return false
}

// Prototype is a parsed pattern.
type Prototype struct {
	Result   Slot
	Params   []Slot
	Variadic bool
}

var protos [idEnd]Prototype

// ProtoOf returns the parsed prototype of id.
func ProtoOf(id ID) (Prototype, bool) {
	if !id.Valid() {
		return Prototype{}, false
	}
	return protos[id], true
}

func mustParseProto(s string) Prototype {
	p, err := ParseProto(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseProto parses "ret(p0,p1,...)". A trailing "..." marks a variadic
// function.
func ParseProto(s string) (Prototype, error) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Prototype{}, fmt.Errorf("libfunc: malformed prototype %q", s)
	}
	var p Prototype
	ret, ok := slotNames[s[:open]]
	if !ok {
		return Prototype{}, fmt.Errorf("libfunc: prototype %q: unknown result type %q", s, s[:open])
	}
	p.Result = ret
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return p, nil
	}
	parts := strings.Split(inner, ",")
	for i, part := range parts {
		if part == "..." {
			if i != len(parts)-1 {
				return Prototype{}, fmt.Errorf("libfunc: prototype %q: ... must be last", s)
			}
			p.Variadic = true
			continue
		}
		slot, ok := slotNames[part]
		if !ok || slot == SlotVoid {
			return Prototype{}, fmt.Errorf("libfunc: prototype %q: bad parameter %q", s, part)
		}
		p.Params = append(p.Params, slot)
	}
	return p, nil
}

// Widths carries the target facts a prototype needs.
type Widths struct {
	IntBits    int
	LongBits   int
	SizeBits   int
	LongDouble ir.FloatKind
}

// Type interns the slot in types.
func (w Widths) Type(types *ir.Types, s Slot) ir.TypeID {
	switch s {
	case SlotVoid:
		return types.Void()
	case SlotI16:
		return types.Int(16)
	case SlotI32:
		return types.Int(32)
	case SlotInt:
		return types.Int(w.IntBits)
	case SlotLong:
		return types.Int(w.LongBits)
	case SlotLLong:
		return types.Int(64)
	case SlotSize:
		return types.Int(w.SizeBits)
	case SlotPtr:
		return types.BytePtr(0)
	case SlotDouble:
		return types.Float(ir.FloatDouble)
	case SlotFloat:
		return types.Float(ir.FloatSingle)
	case SlotLDouble:
		return types.Float(w.LongDouble)
	}
	panic(fmt.Errorf("libfunc: invalid slot %d", s))
}

// FuncType interns the function type of p.
func (w Widths) FuncType(types *ir.Types, p Prototype) ir.TypeID {
	params := make([]ir.TypeID, len(p.Params))
	for i, s := range p.Params {
		params[i] = w.Type(types, s)
	}
	return types.Func(w.Type(types, p.Result), params, p.Variadic)
}
