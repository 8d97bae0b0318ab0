package ir

import (
	"fmt"
	"sort"
	"strings"
)

// AttrKind names an enum attribute. The order here is the print order.
type AttrKind uint8

const (
	AttrNone AttrKind = iota
	AttrAllocAlign
	AttrAllocatedPointer
	AttrAllocSize
	AttrArgMemOnly
	AttrInaccessibleMemOnly
	AttrInaccessibleMemOrArgMemOnly
	AttrNoAlias
	AttrNoCapture
	AttrNoFree
	AttrNoUndef
	AttrNoUnwind
	AttrNonLazyBind
	AttrReadNone
	AttrReadOnly
	AttrReturned
	AttrSExt
	AttrSpeculatable
	AttrWillReturn
	AttrWriteOnly
	AttrZExt

	numAttrKinds
)

var attrNames = [numAttrKinds]string{
	AttrNone:                        "none",
	AttrAllocAlign:                  "allocalign",
	AttrAllocatedPointer:            "allocptr",
	AttrAllocSize:                   "allocsize",
	AttrArgMemOnly:                  "argmemonly",
	AttrInaccessibleMemOnly:         "inaccessiblememonly",
	AttrInaccessibleMemOrArgMemOnly: "inaccessiblemem_or_argmemonly",
	AttrNoAlias:                     "noalias",
	AttrNoCapture:                   "nocapture",
	AttrNoFree:                      "nofree",
	AttrNoUndef:                     "noundef",
	AttrNoUnwind:                    "nounwind",
	AttrNonLazyBind:                 "nonlazybind",
	AttrReadNone:                    "readnone",
	AttrReadOnly:                    "readonly",
	AttrReturned:                    "returned",
	AttrSExt:                        "signext",
	AttrSpeculatable:                "speculatable",
	AttrWillReturn:                  "willreturn",
	AttrWriteOnly:                   "writeonly",
	AttrZExt:                        "zeroext",
}

func (k AttrKind) String() string {
	if k < numAttrKinds {
		return attrNames[k]
	}
	return fmt.Sprintf("AttrKind(%d)", k)
}

// ParseAttrKind maps a textual attribute name to its kind.
func ParseAttrKind(s string) (AttrKind, bool) {
	for k := AttrAllocAlign; k < numAttrKinds; k++ {
		if attrNames[k] == s {
			return k, true
		}
	}
	return AttrNone, false
}

// AllocSizeArgs holds the operands of allocsize: the element size argument
// and, optionally, the element count argument.
type AllocSizeArgs struct {
	Elem   int
	Num    int
	HasNum bool
}

func (a AllocSizeArgs) String() string {
	if a.HasNum {
		return fmt.Sprintf("allocsize(%d,%d)", a.Elem, a.Num)
	}
	return fmt.Sprintf("allocsize(%d)", a.Elem)
}

// AttrSet is the attribute set of one slot (function, return or parameter).
// The zero value is an empty set.
type AttrSet struct {
	kinds     uint32
	allocSize AllocSizeArgs
	strs      map[string]string
}

// Has reports whether kind is present.
func (s *AttrSet) Has(kind AttrKind) bool {
	return kind != AttrNone && s.kinds&(1<<kind) != 0
}

// Add inserts kind and reports whether the set changed.
// AttrAllocSize must be added through SetAllocSize.
func (s *AttrSet) Add(kind AttrKind) bool {
	if kind == AttrNone || kind >= numAttrKinds {
		panic(fmt.Errorf("ir: cannot add attribute %v", kind))
	}
	if kind == AttrAllocSize {
		panic("ir: allocsize requires arguments, use SetAllocSize")
	}
	if s.Has(kind) {
		return false
	}
	s.kinds |= 1 << kind
	return true
}

// Remove deletes kind and reports whether it was present.
func (s *AttrSet) Remove(kind AttrKind) bool {
	if !s.Has(kind) {
		return false
	}
	s.kinds &^= 1 << kind
	if kind == AttrAllocSize {
		s.allocSize = AllocSizeArgs{}
	}
	return true
}

// AllocSize returns the allocsize operands if present.
func (s *AttrSet) AllocSize() (AllocSizeArgs, bool) {
	if !s.Has(AttrAllocSize) {
		return AllocSizeArgs{}, false
	}
	return s.allocSize, true
}

// SetAllocSize adds allocsize unless one is already present.
func (s *AttrSet) SetAllocSize(args AllocSizeArgs) bool {
	if s.Has(AttrAllocSize) {
		return false
	}
	s.kinds |= 1 << AttrAllocSize
	s.allocSize = args
	return true
}

// Str returns the value of a string attribute.
func (s *AttrSet) Str(key string) (string, bool) {
	v, ok := s.strs[key]
	return v, ok
}

// AddStr inserts a string attribute unless the key already exists.
func (s *AttrSet) AddStr(key, value string) bool {
	if _, ok := s.strs[key]; ok {
		return false
	}
	if s.strs == nil {
		s.strs = make(map[string]string, 1)
	}
	s.strs[key] = value
	return true
}

// Kinds lists the present enum attributes in print order.
func (s *AttrSet) Kinds() []AttrKind {
	var out []AttrKind
	for k := AttrAllocAlign; k < numAttrKinds; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Empty reports whether the set carries nothing.
func (s *AttrSet) Empty() bool {
	return s.kinds == 0 && len(s.strs) == 0
}

// Clone returns an independent copy.
func (s *AttrSet) Clone() AttrSet {
	out := AttrSet{kinds: s.kinds, allocSize: s.allocSize}
	if len(s.strs) > 0 {
		out.strs = make(map[string]string, len(s.strs))
		for k, v := range s.strs {
			out.strs[k] = v
		}
	}
	return out
}

// Equal reports whether both sets carry the same attributes.
func (s *AttrSet) Equal(o *AttrSet) bool {
	if s.kinds != o.kinds || s.allocSize != o.allocSize || len(s.strs) != len(o.strs) {
		return false
	}
	for k, v := range s.strs {
		if ov, ok := o.strs[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Strings renders each attribute in print order.
func (s *AttrSet) Strings() []string {
	out := make([]string, 0, 8)
	for _, k := range s.Kinds() {
		if k == AttrAllocSize {
			out = append(out, s.allocSize.String())
			continue
		}
		out = append(out, k.String())
	}
	keys := make([]string, 0, len(s.strs))
	for k := range s.strs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%q=%q", k, s.strs[k]))
	}
	return out
}

func (s *AttrSet) String() string {
	return strings.Join(s.Strings(), " ")
}

// AttrList groups the function, return and per-parameter attribute sets.
type AttrList struct {
	Fn     AttrSet
	Ret    AttrSet
	Params []AttrSet
}

// Param returns the set for parameter i, growing the list when needed.
func (l *AttrList) Param(i int) *AttrSet {
	if i < 0 {
		panic(fmt.Errorf("ir: negative parameter index %d", i))
	}
	for len(l.Params) <= i {
		l.Params = append(l.Params, AttrSet{})
	}
	return &l.Params[i]
}

// HasParam reports whether parameter i carries kind.
func (l *AttrList) HasParam(i int, kind AttrKind) bool {
	if i < 0 || i >= len(l.Params) {
		return false
	}
	return l.Params[i].Has(kind)
}

// Clone returns an independent copy.
func (l *AttrList) Clone() AttrList {
	out := AttrList{Fn: l.Fn.Clone(), Ret: l.Ret.Clone()}
	if len(l.Params) > 0 {
		out.Params = make([]AttrSet, len(l.Params))
		for i := range l.Params {
			out.Params[i] = l.Params[i].Clone()
		}
	}
	return out
}

// WithoutFnAttr returns a copy with kind dropped from the function slot.
func (l *AttrList) WithoutFnAttr(kind AttrKind) AttrList {
	out := l.Clone()
	out.Fn.Remove(kind)
	return out
}

// Equal compares two lists slot by slot; missing trailing parameter sets
// count as empty.
func (l *AttrList) Equal(o *AttrList) bool {
	if !l.Fn.Equal(&o.Fn) || !l.Ret.Equal(&o.Ret) {
		return false
	}
	n := max(len(l.Params), len(o.Params))
	var empty AttrSet
	for i := 0; i < n; i++ {
		a, b := &empty, &empty
		if i < len(l.Params) {
			a = &l.Params[i]
		}
		if i < len(o.Params) {
			b = &o.Params[i]
		}
		if !a.Equal(b) {
			return false
		}
	}
	return true
}
