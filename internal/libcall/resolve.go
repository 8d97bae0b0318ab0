package libcall

import (
	"fmt"

	"libcall/internal/ir"
	"libcall/internal/libfunc"
	"libcall/internal/trace"
)

// Config wires a Resolver to its target and observers.
type Config struct {
	Registry libfunc.Registry
	Counters Counters
	Tracer   trace.Tracer
	// Span is the parent span of emitted trace points.
	Span uint64
	// Assertions makes resolution panic when a declaration has a narrow
	// integer parameter the extension table does not cover.
	Assertions bool
}

// Resolver finds or creates library function declarations in a module.
// A Resolver may be shared between goroutines as long as each module is
// mutated by one goroutine at a time.
type Resolver struct {
	reg        libfunc.Registry
	applier    *Applier
	tracer     trace.Tracer
	span       uint64
	assertions bool
}

// NewResolver builds a resolver. Config.Registry is required.
func NewResolver(cfg Config) *Resolver {
	if cfg.Registry == nil {
		panic("libcall: Config.Registry is nil")
	}
	t := cfg.Tracer
	if t == nil {
		t = trace.Nop
	}
	return &Resolver{
		reg:        cfg.Registry,
		applier:    NewApplier(cfg.Registry, cfg.Counters),
		tracer:     t,
		span:       cfg.Span,
		assertions: cfg.Assertions,
	}
}

// Registry returns the registry the resolver consults.
func (r *Resolver) Registry() libfunc.Registry { return r.reg }

// Applier returns the attribute applier used after resolution.
func (r *Resolver) Applier() *Applier { return r.applier }

// Emittable reports whether a call to id may be emitted into m: the target
// provides it and any same-named global is a function with the accepted
// prototype.
func (r *Resolver) Emittable(m *ir.Module, id libfunc.ID) bool {
	_, err := r.check(m, id)
	return err == nil
}

// EmittableName is Emittable for a symbol name.
func (r *Resolver) EmittableName(m *ir.Module, name string) bool {
	id, ok := r.reg.Lookup(name)
	return ok && r.Emittable(m, id)
}

// check returns the existing declaration of id, nil when none exists, or
// an error when id cannot be used.
func (r *Resolver) check(m *ir.Module, id libfunc.ID) (*ir.Function, error) {
	if !r.reg.Has(id) {
		return nil, unavailable(r.reg.Name(id))
	}
	name := r.reg.Name(id)
	g := m.Lookup(name)
	if g == nil {
		return nil, nil
	}
	want, _ := r.reg.Prototype(m.Types, id)
	fn, ok := g.(*ir.Function)
	if !ok {
		return nil, &IncompatibleError{Name: name, Have: "global variable", Want: m.Types.String(want)}
	}
	if fn.Type() != want {
		return nil, &IncompatibleError{Name: name, Have: m.Types.String(fn.Type()), Want: m.Types.String(want)}
	}
	return fn, nil
}

// Resolve returns the declaration of id in m, creating it with fnType when
// absent, then applies the extension table and the attribute rules. An
// existing declaration keeps its type and attributes; new facts are only
// added. Nothing changes when the function is unavailable.
func (r *Resolver) Resolve(m *ir.Module, id libfunc.ID, fnType ir.TypeID) (*ir.Function, error) {
	return r.resolve(m, id, fnType, nil)
}

func (r *Resolver) resolve(m *ir.Module, id libfunc.ID, fnType ir.TypeID, extra *ir.AttrList) (*ir.Function, error) {
	name := r.reg.Name(id)
	fn, err := r.check(m, id)
	if err != nil {
		trace.Point(r.tracer, trace.ScopeDecl, "resolve "+name, "unavailable", r.span,
			map[string]string{trace.ErrorKey: err.Error()})
		return nil, err
	}
	state := "existing"
	if fn == nil {
		if _, ok := m.Types.FuncInfo(fnType); !ok {
			violate("resolve", "%s: %s is not a function type", name, m.Types.String(fnType))
		}
		fn = m.NewFunction(name, fnType)
		if extra != nil {
			fn.Attrs = extra.Clone()
		}
		state = "created"
	}
	r.applyExt(fn, id)
	// rules describe the C prototype; a declaration of another shape gets none
	changed := false
	if want, ok := r.reg.Prototype(m.Types, id); ok && fn.Type() == want {
		changed = r.applier.Apply(fn, id)
	}
	trace.Point(r.tracer, trace.ScopeDecl, "resolve "+name, state, r.span,
		map[string]string{"changed": fmt.Sprint(changed), "type": m.Types.String(fn.Type())})
	return fn, nil
}

// extParams lists, per function, the integer parameters that carry an
// extension attribute on targets that require one. All of them are C int.
var extParams = map[libfunc.ID][]int{
	libfunc.Fputc:   {0},
	libfunc.Putchar: {0},
	libfunc.Ldexp:   {1},
	libfunc.Ldexpf:  {1},
	libfunc.Ldexpl:  {1},
	libfunc.Memchr:  {1},
	libfunc.Strchr:  {1},
	libfunc.Memset:  {1},
	libfunc.Memccpy: {2},
}

// noExtNeeded lists functions whose narrow integer parameters are known to
// need no extension attribute, typically because they are size_t on a
// narrow-word target.
var noExtNeeded = map[libfunc.ID]bool{
	libfunc.Bcmp:            true,
	libfunc.Calloc:          true,
	libfunc.Fwrite:          true,
	libfunc.Malloc:          true,
	libfunc.Memcmp:          true,
	libfunc.MemcpyChk:       true,
	libfunc.Mempcpy:         true,
	libfunc.MemsetPattern16: true,
	libfunc.Snprintf:        true,
	libfunc.Stpncpy:         true,
	libfunc.Strlcat:         true,
	libfunc.Strlcpy:         true,
	libfunc.Strncat:         true,
	libfunc.Strncmp:         true,
	libfunc.Strncpy:         true,
	libfunc.Vsnprintf:       true,
}

func (r *Resolver) applyExt(fn *ir.Function, id libfunc.ID) {
	types := fn.Parent().Types
	sig := fn.Signature()
	word := r.reg.WordBits()
	kind := r.reg.ExtAttr(true)
	if idx, ok := extParams[id]; ok {
		if kind == ir.AttrNone {
			return
		}
		for _, i := range idx {
			if i >= len(sig.Params) {
				continue
			}
			if bits, ok := types.IsInt(sig.Params[i]); ok && bits < word {
				fn.Attrs.Param(i).Add(kind)
			}
		}
		return
	}
	if !r.assertions || noExtNeeded[id] {
		return
	}
	for i, p := range sig.Params {
		if bits, ok := types.IsInt(p); ok && bits < word {
			violate("resolve", "%s: parameter %d is i%d and has no extension rule", fn.Name(), i, bits)
		}
	}
}
