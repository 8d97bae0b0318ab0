package libcall

import (
	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// AllocFamilyKey is the string attribute tagging allocator, reallocator and
// deallocator declarations that must be paired.
const AllocFamilyKey = "alloc-family"

// Applier adds the attributes the rule table implies to a declaration. It
// only ever adds facts, except when readonly and writeonly meet and
// collapse into readnone.
type Applier struct {
	reg      libfunc.Registry
	counters Counters
}

// NewApplier creates an applier. A nil counters discards statistics.
func NewApplier(reg libfunc.Registry, counters Counters) *Applier {
	if counters == nil {
		counters = nopCounters{}
	}
	return &Applier{reg: reg, counters: counters}
}

// Apply annotates fn as the library function id and reports whether any
// attribute changed. Identifiers the target does not provide are left
// alone. Parameter facts for indexes beyond fn's arity are skipped.
func (a *Applier) Apply(fn *ir.Function, id libfunc.ID) bool {
	if fn == nil || !a.reg.Has(id) {
		return false
	}
	r, ok := RuleFor(id)
	if !ok {
		return false
	}
	changed := false
	if !r.FreeLike {
		changed = a.fnAttr(fn, ir.AttrNoFree, CountNoFree) || changed
	}
	if fn.Parent().RtLibUseGOT {
		changed = a.fnAttr(fn, ir.AttrNonLazyBind, CountNonLazyBind) || changed
	}
	if r.AllocFamily != "" && fn.Attrs.Fn.AddStr(AllocFamilyKey, r.AllocFamily) {
		a.counters.Inc(CountAllocFamily)
		changed = true
	}
	if r.AllocSize != nil && fn.Attrs.Fn.SetAllocSize(*r.AllocSize) {
		a.counters.Inc(CountAllocSize)
		changed = true
	}
	for _, class := range r.Access {
		changed = a.access(fn, class) || changed
	}
	changed = a.fnFacts(fn, r.Fn) || changed

	n := len(fn.Params())
	for _, p := range r.Params {
		if p.Arg < 0 || p.Arg >= n {
			continue
		}
		changed = a.paramFacts(fn, p.Arg, p.Facts) || changed
	}
	return changed
}

// ApplyByName annotates the existing function called name when it is a
// known, available library function declared with exactly its accepted
// prototype.
func (a *Applier) ApplyByName(m *ir.Module, name string) bool {
	fn := m.Function(name)
	if fn == nil {
		return false
	}
	id, ok := a.reg.Lookup(name)
	if !ok {
		return false
	}
	want, ok := a.reg.Prototype(m.Types, id)
	if !ok || fn.Type() != want {
		return false
	}
	return a.Apply(fn, id)
}

func (a *Applier) fnAttr(fn *ir.Function, kind ir.AttrKind, c Counter) bool {
	if !fn.Attrs.Fn.Add(kind) {
		return false
	}
	a.counters.Inc(c)
	return true
}

func (a *Applier) access(fn *ir.Function, class AccessClass) bool {
	s := &fn.Attrs.Fn
	switch class {
	case AccessNone:
		if s.Has(ir.AttrReadNone) {
			return false
		}
		s.Remove(ir.AttrReadOnly)
		s.Remove(ir.AttrWriteOnly)
		s.Add(ir.AttrReadNone)
		a.counters.Inc(CountReadNone)
		return true
	case AccessReadOnly:
		return a.narrow(s, ir.AttrReadOnly, ir.AttrWriteOnly, CountReadOnly)
	case AccessNoReadsMayWrite:
		return a.narrow(s, ir.AttrWriteOnly, ir.AttrReadOnly, CountWriteOnly)
	case AccessArgMemOnly:
		return a.fnAttr(fn, ir.AttrArgMemOnly, CountArgMemOnly)
	case AccessInaccessibleMemOnly:
		return a.fnAttr(fn, ir.AttrInaccessibleMemOnly, CountInaccessibleMemOnly)
	case AccessInaccessibleOrArgMem:
		return a.fnAttr(fn, ir.AttrInaccessibleMemOrArgMemOnly, CountInaccessibleOrArgMemOnly)
	}
	return false
}

// narrow adds one memory effect. If the opposite effect is already present
// the function touches no memory at all and both become readnone.
func (a *Applier) narrow(s *ir.AttrSet, kind, opposite ir.AttrKind, c Counter) bool {
	if s.Has(kind) || s.Has(ir.AttrReadNone) {
		return false
	}
	if s.Remove(opposite) {
		s.Add(ir.AttrReadNone)
		a.counters.Inc(CountReadNone)
		return true
	}
	s.Add(kind)
	a.counters.Inc(c)
	return true
}

func (a *Applier) fnFacts(fn *ir.Function, f FnFacts) bool {
	changed := false
	if f&NoThrow != 0 {
		changed = a.fnAttr(fn, ir.AttrNoUnwind, CountNoUnwind) || changed
	}
	if f&WillReturn != 0 {
		changed = a.fnAttr(fn, ir.AttrWillReturn, CountWillReturn) || changed
	}
	if f&NoFree != 0 {
		changed = a.fnAttr(fn, ir.AttrNoFree, CountNoFree) || changed
	}
	if f&RetNoAlias != 0 && fn.Attrs.Ret.Add(ir.AttrNoAlias) {
		a.counters.Inc(CountNoAlias)
		changed = true
	}
	if f&RetNoUndef != 0 && fn.ReturnType() != fn.Parent().Types.Void() && fn.Attrs.Ret.Add(ir.AttrNoUndef) {
		a.counters.Inc(CountNoUndef)
		changed = true
	}
	if f&ArgsNoUndef != 0 {
		for i := range fn.Params() {
			if fn.Attrs.Param(i).Add(ir.AttrNoUndef) {
				a.counters.Inc(CountNoUndef)
				changed = true
			}
		}
	}
	return changed
}

var paramCounters = map[ir.AttrKind]Counter{
	ir.AttrNoCapture:        CountNoCapture,
	ir.AttrNoAlias:          CountArgNoAlias,
	ir.AttrReadOnly:         CountArgReadOnly,
	ir.AttrWriteOnly:        CountArgWriteOnly,
	ir.AttrNoUndef:          CountNoUndef,
	ir.AttrReturned:         CountReturned,
	ir.AttrAllocAlign:       CountAllocAlign,
	ir.AttrAllocatedPointer: CountAllocatedPointer,
}

func (a *Applier) paramFacts(fn *ir.Function, i int, f ParamFacts) bool {
	changed := false
	for _, pa := range paramFactAttrs {
		if f&pa.f == 0 {
			continue
		}
		if fn.Attrs.Param(i).Add(pa.kind) {
			a.counters.Inc(paramCounters[pa.kind])
			changed = true
		}
	}
	return changed
}
