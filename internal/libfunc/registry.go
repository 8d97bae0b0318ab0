package libfunc

import (
	"errors"
	"fmt"

	"libcall/internal/ir"
	"libcall/internal/target"
)

// ErrUnknownFunction reports a symbol with no ID.
var ErrUnknownFunction = errors.New("unknown library function")

// Registry answers which library functions exist on the current target and
// what their accepted prototypes are.
type Registry interface {
	// Has reports whether id is available on the target.
	Has(id ID) bool
	// Lookup maps a symbol to its ID, regardless of availability.
	Lookup(name string) (ID, bool)
	// Name returns the symbol used for id on the target.
	Name(id ID) string
	// Prototype interns the accepted function type of id.
	Prototype(types *ir.Types, id ID) (ir.TypeID, bool)
	// ExtAttr returns the extension attribute for a narrow integer argument,
	// or ir.AttrNone when the target passes it unextended.
	ExtAttr(signed bool) ir.AttrKind
	// WordBits is the native register width; integers narrower than this
	// are subject to ExtAttr.
	WordBits() int
}

// TargetInfo is the Registry for a target profile. It is safe for
// concurrent readers; SetAvailable must not race with them.
type TargetInfo struct {
	profile   target.Profile
	widths    Widths
	available [idEnd]bool
}

var _ Registry = (*TargetInfo)(nil)

// NewTargetInfo computes availability from the profile's OS family and then
// applies its Enable and Disable lists.
func NewTargetInfo(p target.Profile) (*TargetInfo, error) {
	t := &TargetInfo{
		profile: p,
		widths: Widths{
			IntBits:    intBits(p.WordBits),
			LongBits:   p.LongBits,
			SizeBits:   p.SizeBits,
			LongDouble: p.LongDouble,
		},
	}
	for id := Invalid + 1; id < idEnd; id++ {
		t.available[id] = descs[id].avail.on(p.OS)
	}
	for _, name := range p.Enable {
		id, ok := ByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: enable: %w %q", p.Name, ErrUnknownFunction, name)
		}
		t.available[id] = true
	}
	for _, name := range p.Disable {
		id, ok := ByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: disable: %w %q", p.Name, ErrUnknownFunction, name)
		}
		t.available[id] = false
	}
	return t, nil
}

func intBits(word int) int {
	if word < 32 {
		return 16
	}
	return 32
}

// Profile returns the target the registry was built for.
func (t *TargetInfo) Profile() target.Profile { return t.profile }

// Widths returns the C type widths used for prototypes.
func (t *TargetInfo) Widths() Widths { return t.widths }

// SetAvailable overrides availability of a single function.
func (t *TargetInfo) SetAvailable(id ID, ok bool) {
	if id.Valid() {
		t.available[id] = ok
	}
}

func (t *TargetInfo) Has(id ID) bool {
	return id.Valid() && t.available[id]
}

func (t *TargetInfo) Lookup(name string) (ID, bool) {
	return ByName(name)
}

func (t *TargetInfo) Name(id ID) string {
	return id.Symbol()
}

func (t *TargetInfo) Prototype(types *ir.Types, id ID) (ir.TypeID, bool) {
	p, ok := ProtoOf(id)
	if !ok {
		return ir.NoTypeID, false
	}
	return t.widths.FuncType(types, p), true
}

func (t *TargetInfo) ExtAttr(signed bool) ir.AttrKind {
	switch {
	case t.profile.SignExtI32Param, t.profile.ExtI32Param && signed:
		return ir.AttrSExt
	case t.profile.ExtI32Param:
		return ir.AttrZExt
	}
	return ir.AttrNone
}

func (t *TargetInfo) WordBits() int {
	return t.profile.WordBits
}

// Available lists the IDs present on the target.
func (t *TargetInfo) Available() []ID {
	var out []ID
	for id := Invalid + 1; id < idEnd; id++ {
		if t.available[id] {
			out = append(out, id)
		}
	}
	return out
}
