package libcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libcall/internal/libfunc"
)

func TestEveryIDHasARule(t *testing.T) {
	for _, id := range libfunc.All() {
		r, ok := RuleFor(id)
		require.True(t, ok, id.Symbol())
		if IsUnannotated(id) {
			assert.Equal(t, FamilyUnannotated, r.Family)
			assert.Zero(t, r.Fn)
			assert.Empty(t, r.Params)
		} else {
			assert.NotEmpty(t, r.Family, id.Symbol())
		}
	}
	_, ok := RuleFor(libfunc.Invalid)
	assert.False(t, ok)
	assert.True(t, IsUnannotated(libfunc.Strlcpy))
	assert.False(t, IsUnannotated(libfunc.Strcpy))
}

func TestRuleWithDoesNotMutateBase(t *testing.T) {
	base := Rule{
		Access: access(AccessReadOnly),
		Fn:     NoThrow,
		Params: []ParamRule{arg(0, NoCapture)},
	}
	got := base.With(Rule{
		Family:    FamilyAllocator,
		Access:    access(AccessArgMemOnly),
		Fn:        WillReturn,
		Params:    []ParamRule{arg(0, Returned), arg(2, ArgReadOnly)},
		AllocSize: allocSize(1),
	})

	assert.Equal(t, []AccessClass{AccessReadOnly, AccessArgMemOnly}, got.Access)
	assert.True(t, got.Has(NoThrow|WillReturn))
	assert.Equal(t, NoCapture|Returned, got.ParamFacts(0))
	assert.Equal(t, ArgReadOnly, got.ParamFacts(2))
	assert.Equal(t, FamilyAllocator, got.Family)
	require.NotNil(t, got.AllocSize)
	assert.Equal(t, 1, got.AllocSize.Elem)

	assert.Equal(t, []AccessClass{AccessReadOnly}, base.Access)
	assert.Equal(t, NoCapture, base.ParamFacts(0))
	assert.False(t, base.Has(WillReturn))
	assert.Empty(t, base.Family)
}

func TestCopyVariantsShareBase(t *testing.T) {
	cpy, _ := RuleFor(libfunc.Strcpy)
	stp, _ := RuleFor(libfunc.Stpcpy)
	assert.Equal(t, ArgWriteOnly|NoAlias|Returned, cpy.ParamFacts(0))
	assert.Equal(t, ArgWriteOnly|NoAlias, stp.ParamFacts(0))
	assert.Equal(t, cpy.ParamFacts(1), stp.ParamFacts(1))

	chk, _ := RuleFor(libfunc.MemcpyChk)
	pcpy, _ := RuleFor(libfunc.Mempcpy)
	assert.False(t, chk.Has(WillReturn))
	assert.True(t, pcpy.Has(WillReturn|NoThrow))
}

func TestCancellationPointRules(t *testing.T) {
	for _, id := range []libfunc.ID{
		libfunc.Read, libfunc.Write, libfunc.Open, libfunc.Open64,
		libfunc.Pread, libfunc.Pwrite, libfunc.System, libfunc.Qsort,
	} {
		r, _ := RuleFor(id)
		assert.False(t, r.Fn&NoThrow != 0, "%s must be allowed to unwind", id)
		assert.False(t, r.Fn&WillReturn != 0, "%s may block forever", id)
		assert.True(t, r.Has(RetAndArgsNoUndef), id.Symbol())
	}
}

func TestNumericRulesReadNothing(t *testing.T) {
	for _, id := range []libfunc.ID{libfunc.Sin, libfunc.Sqrtf, libfunc.Powl, libfunc.Abs, libfunc.Isdigit} {
		r, _ := RuleFor(id)
		assert.Equal(t, []AccessClass{AccessNoReadsMayWrite}, r.Access, id.Symbol())
		assert.True(t, r.Has(NoThrow|NoFree|WillReturn), id.Symbol())
	}
}

func TestLocaleCompareIsNotArgMemOnly(t *testing.T) {
	for _, id := range []libfunc.ID{libfunc.Strcoll, libfunc.Strcasecmp, libfunc.Strncasecmp} {
		r, _ := RuleFor(id)
		assert.Equal(t, []AccessClass{AccessReadOnly}, r.Access, id.Symbol())
	}
	r, _ := RuleFor(libfunc.Strcmp)
	assert.Contains(t, r.Access, AccessArgMemOnly)
}

func TestAllocFamiliesPair(t *testing.T) {
	tags := func(ids ...libfunc.ID) []string {
		var out []string
		for _, id := range ids {
			r, _ := RuleFor(id)
			out = append(out, r.AllocFamily)
		}
		return out
	}
	assert.Equal(t, []string{"malloc", "malloc", "malloc", "malloc"},
		tags(libfunc.Malloc, libfunc.Calloc, libfunc.Realloc, libfunc.Free))
	assert.Equal(t, []string{"vec_malloc", "vec_malloc", "vec_malloc", "vec_malloc"},
		tags(libfunc.VecMalloc, libfunc.VecCalloc, libfunc.VecRealloc, libfunc.VecFree))

	for _, id := range []libfunc.ID{libfunc.Free, libfunc.VecFree, libfunc.Realloc, libfunc.Reallocf, libfunc.VecRealloc} {
		r, _ := RuleFor(id)
		assert.True(t, r.FreeLike, id.Symbol())
	}
	r, _ := RuleFor(libfunc.Malloc)
	assert.False(t, r.FreeLike)
}

func TestFactStrings(t *testing.T) {
	assert.Equal(t, []string{"nounwind", "willreturn", "ret:noundef"}, (NoThrow | WillReturn | RetNoUndef).Strings())
	assert.Equal(t, []string{"nocapture", "readonly"}, (ArgReadOnly | NoCapture).Strings())
	assert.Equal(t, "writeonly", AccessNoReadsMayWrite.String())
	assert.Equal(t, "inaccessiblemem_or_argmemonly", AccessInaccessibleOrArgMem.String())
}
