package libcall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"libcall/internal/ir"
	"libcall/internal/libfunc"
	"libcall/internal/observ"
	"libcall/internal/target"
)

type fixture struct {
	ti       *libfunc.TargetInfo
	m        *ir.Module
	counters *observ.CounterSet[Counter]
	r        *Resolver
	cb       *CallBuilder
	caller   *ir.Function
}

// Caller parameters, in order.
const (
	argI32Ptr = iota
	argStr
	argChar
	argLen
	argFloat
	argDouble
	argHalf
	argLongDouble
)

func newFixture(t *testing.T, profile string, tweak ...func(*Config)) *fixture {
	t.Helper()
	p, err := target.Builtin(profile)
	require.NoError(t, err)
	ti, err := libfunc.NewTargetInfo(p)
	require.NoError(t, err)

	f := &fixture{
		ti:       ti,
		m:        p.NewModule("test"),
		counters: observ.NewCounterSet[Counter](int(NumCounters)),
	}
	cfg := Config{Registry: ti, Counters: f.counters}
	for _, fn := range tweak {
		fn(&cfg)
	}
	f.r = NewResolver(cfg)

	types := f.m.Types
	f.caller = f.m.NewFunction("caller", types.Func(types.Void(), []ir.TypeID{
		types.Pointer(types.Int(32), 0),
		types.BytePtr(0),
		types.Int(8),
		f.m.IntPtrType(),
		types.Float(ir.FloatSingle),
		types.Float(ir.FloatDouble),
		types.Float(ir.FloatHalf),
		types.Float(p.LongDouble),
	}, false))
	for i, name := range []string{"p", "s", "c", "n", "f", "d", "h", "ld"} {
		f.caller.Param(i).SetName(name)
	}
	f.cb = NewCallBuilder(ir.NewBuilder(f.caller.NewBlock("entry")), f.r)
	return f
}

func (f *fixture) arg(i int) ir.Value { return f.caller.Param(i) }

// declare adds id to the module with its accepted prototype and no
// attributes.
func (f *fixture) declare(t *testing.T, id libfunc.ID) *ir.Function {
	t.Helper()
	ty, ok := f.ti.Prototype(f.m.Types, id)
	require.True(t, ok)
	return f.m.NewFunction(id.Symbol(), ty)
}

// resolve resolves id with its accepted prototype.
func (f *fixture) resolve(t *testing.T, id libfunc.ID) *ir.Function {
	t.Helper()
	ty, ok := f.ti.Prototype(f.m.Types, id)
	require.True(t, ok)
	fn, err := f.r.Resolve(f.m, id, ty)
	require.NoError(t, err, id.Symbol())
	return fn
}

func (f *fixture) instrCount() int {
	n := 0
	for _, b := range f.caller.Blocks() {
		n += len(b.Instrs)
	}
	return n
}

func requireViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		_, ok := r.(*ContractViolation)
		require.True(t, ok, "want *ContractViolation panic, got %v", r)
	}()
	fn()
}
