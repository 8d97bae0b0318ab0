package ir

import "strconv"

// Value is anything that can be used as an operand.
type Value interface {
	Type() TypeID
	// Ref is the operand spelling, e.g. "%p", "42" or "@strlen".
	Ref() string
}

// Arg is a formal parameter.
type Arg struct {
	parent *Function
	index  int
	typ    TypeID
	name   string
}

func (a *Arg) Type() TypeID        { return a.typ }
func (a *Arg) Index() int          { return a.index }
func (a *Arg) Parent() *Function   { return a.parent }
func (a *Arg) SetName(name string) { a.name = name }

func (a *Arg) Ref() string {
	if a.name != "" {
		return "%" + a.name
	}
	return "%" + strconv.Itoa(a.index)
}

// ConstInt is an integer constant.
type ConstInt struct {
	typ TypeID
	V   int64
}

func (c *ConstInt) Type() TypeID { return c.typ }
func (c *ConstInt) Ref() string  { return strconv.FormatInt(c.V, 10) }

// NullPtr is the null pointer constant of a pointer type.
type NullPtr struct {
	typ TypeID
}

func (n *NullPtr) Type() TypeID { return n.typ }
func (n *NullPtr) Ref() string  { return "null" }

// Instr is an instruction inside a block.
type Instr interface {
	Value
	Block() *Block
	isInstr()
}

// Block is a straight-line list of instructions.
type Block struct {
	Name   string
	Instrs []Instr
	parent *Function
}

// Parent returns the owning function.
func (b *Block) Parent() *Function { return b.parent }

// Call is a direct call.
type Call struct {
	block  *Block
	name   string
	Callee *Function
	Args   []Value
	// Attrs are call-site attributes, independent from the callee's.
	Attrs    AttrList
	CallConv CallConv
}

func (c *Call) Type() TypeID  { return c.Callee.ReturnType() }
func (c *Call) Block() *Block { return c.block }
func (c *Call) Name() string  { return c.name }
func (*Call) isInstr()        {}

func (c *Call) Ref() string {
	if c.name == "" {
		return ""
	}
	return "%" + c.name
}

// CastOp selects a conversion.
type CastOp uint8

const (
	CastBit CastOp = iota + 1
	CastSExt
	CastZExt
	CastTrunc
)

func (op CastOp) String() string {
	switch op {
	case CastBit:
		return "bitcast"
	case CastSExt:
		return "sext"
	case CastZExt:
		return "zext"
	case CastTrunc:
		return "trunc"
	default:
		return "cast"
	}
}

// Cast converts a value to another type.
type Cast struct {
	block *Block
	name  string
	Op    CastOp
	Val   Value
	To    TypeID
}

func (c *Cast) Type() TypeID  { return c.To }
func (c *Cast) Block() *Block { return c.block }
func (c *Cast) Ref() string   { return "%" + c.name }
func (*Cast) isInstr()        {}

// Ret returns from the function; Val is nil for void.
type Ret struct {
	block *Block
	Val   Value
}

func (r *Ret) Type() TypeID  { return NoTypeID }
func (r *Ret) Block() *Block { return r.block }
func (r *Ret) Ref() string   { return "" }
func (*Ret) isInstr()        {}
