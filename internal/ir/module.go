package ir

import (
	"fmt"
	"strconv"
)

// CallConv is a calling convention number, matching the textual IR numbering.
type CallConv uint16

const (
	CallConvC    CallConv = 0
	CallConvFast CallConv = 8
	CallConvCold CallConv = 9
)

func (cc CallConv) String() string {
	switch cc {
	case CallConvC:
		return "ccc"
	case CallConvFast:
		return "fastcc"
	case CallConvCold:
		return "coldcc"
	default:
		return "cc " + strconv.Itoa(int(cc))
	}
}

// DataLayout carries the target properties the IR needs.
type DataLayout struct {
	PointerBits int
}

// Global is a named module-level entity.
type Global interface {
	Name() string
	Type() TypeID
	isGlobal()
}

// GlobalVar is a non-function global.
type GlobalVar struct {
	name string
	typ  TypeID
}

func (g *GlobalVar) Name() string { return g.name }
func (g *GlobalVar) Type() TypeID { return g.typ }
func (g *GlobalVar) Ref() string  { return "@" + g.name }
func (*GlobalVar) isGlobal()      {}

// Module owns types and globals. It is not safe for concurrent mutation.
type Module struct {
	Name   string
	Types  *Types
	Layout DataLayout

	// RtLibUseGOT asks for runtime library calls to avoid lazy binding.
	RtLibUseGOT bool

	globals map[string]Global
	order   []Global
}

// NewModule creates an empty module.
func NewModule(name string, layout DataLayout) *Module {
	if layout.PointerBits == 0 {
		layout.PointerBits = 64
	}
	return &Module{
		Name:    name,
		Types:   NewTypes(),
		Layout:  layout,
		globals: make(map[string]Global, 16),
	}
}

// Lookup returns the global named name, or nil.
func (m *Module) Lookup(name string) Global {
	return m.globals[name]
}

// Function returns the function named name, or nil if absent or not a function.
func (m *Module) Function(name string) *Function {
	f, _ := m.globals[name].(*Function)
	return f
}

// Globals returns globals in creation order.
func (m *Module) Globals() []Global {
	return append([]Global(nil), m.order...)
}

// Functions returns function globals in creation order.
func (m *Module) Functions() []*Function {
	out := make([]*Function, 0, len(m.order))
	for _, g := range m.order {
		if f, ok := g.(*Function); ok {
			out = append(out, f)
		}
	}
	return out
}

// NewFunction declares a function. The name must be free.
func (m *Module) NewFunction(name string, fnType TypeID) *Function {
	info, ok := m.Types.FuncInfo(fnType)
	if !ok {
		panic(fmt.Errorf("ir: %s is not a function type", m.Types.String(fnType)))
	}
	m.mustBeFree(name)
	f := &Function{name: name, typ: fnType, parent: m}
	f.params = make([]*Arg, len(info.Params))
	for i, p := range info.Params {
		f.params[i] = &Arg{parent: f, index: i, typ: p}
	}
	m.add(f)
	return f
}

// NewGlobalVar adds a non-function global of the given type.
func (m *Module) NewGlobalVar(name string, typ TypeID) *GlobalVar {
	m.mustBeFree(name)
	g := &GlobalVar{name: name, typ: m.Types.Pointer(typ, 0)}
	m.add(g)
	return g
}

func (m *Module) mustBeFree(name string) {
	if name == "" {
		panic("ir: empty global name")
	}
	if _, taken := m.globals[name]; taken {
		panic(fmt.Errorf("ir: global %q already defined", name))
	}
}

func (m *Module) add(g Global) {
	m.globals[g.Name()] = g
	m.order = append(m.order, g)
}

// IntPtrType returns the integer type as wide as a pointer.
func (m *Module) IntPtrType() TypeID {
	return m.Types.Int(m.Layout.PointerBits)
}

// Function is a declaration or definition.
type Function struct {
	name     string
	typ      TypeID
	parent   *Module
	params   []*Arg
	blocks   []*Block
	tmpNames map[string]int

	Attrs    AttrList
	CallConv CallConv
}

func (f *Function) Name() string    { return f.name }
func (f *Function) Type() TypeID    { return f.typ }
func (f *Function) Ref() string     { return "@" + f.name }
func (f *Function) Parent() *Module { return f.parent }
func (*Function) isGlobal()         {}

// Signature returns the function type's shape.
func (f *Function) Signature() *FuncInfo {
	info, _ := f.parent.Types.FuncInfo(f.typ)
	return info
}

// ReturnType is a shortcut for Signature().Result.
func (f *Function) ReturnType() TypeID {
	return f.Signature().Result
}

// Params returns the formal arguments.
func (f *Function) Params() []*Arg { return f.params }

// Param returns argument i.
func (f *Function) Param(i int) *Arg { return f.params[i] }

// IsDeclaration reports whether the function has no body.
func (f *Function) IsDeclaration() bool { return len(f.blocks) == 0 }

// Blocks returns the body blocks.
func (f *Function) Blocks() []*Block { return f.blocks }

// NewBlock appends a basic block to the body.
func (f *Function) NewBlock(name string) *Block {
	b := &Block{Name: name, parent: f}
	f.blocks = append(f.blocks, b)
	return b
}

func (f *Function) uniqueName(base string) string {
	if base == "" {
		return ""
	}
	if f.tmpNames == nil {
		f.tmpNames = make(map[string]int)
	}
	n := f.tmpNames[base]
	f.tmpNames[base] = n + 1
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n)
}
