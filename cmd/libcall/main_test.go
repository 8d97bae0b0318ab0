package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"libcall/internal/libcall"
	"libcall/internal/libfunc"
	"libcall/internal/target"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color=off"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRulesJSON(t *testing.T) {
	out, _, err := run(t, "rules", "strlen", "--format", "json")
	require.NoError(t, err)

	var rows []ruleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "strlen", rows[0].Name)
	assert.Equal(t, string(libcall.FamilyStringInspect), rows[0].Family)
	assert.Contains(t, rows[0].Access, "readonly")
	assert.Contains(t, rows[0].Fn, "nounwind")
	assert.Contains(t, rows[0].Fn, "ret:noundef")
	require.NotEmpty(t, rows[0].Params)
	assert.Equal(t, 0, rows[0].Params[0].Arg)
	assert.Contains(t, rows[0].Params[0].Facts, "nocapture")
}

func TestRulesNamesFoldCase(t *testing.T) {
	id, err := lookupName("STRLEN")
	require.NoError(t, err)
	assert.Equal(t, libfunc.Strlen, id)

	id, err = lookupName("_io_getc")
	require.NoError(t, err)
	assert.Equal(t, "_IO_getc", id.Symbol())

	_, _, err = run(t, "rules", "strlen_s")
	assert.True(t, errors.Is(err, libfunc.ErrUnknownFunction))
}

func TestRulesFamilyYAML(t *testing.T) {
	out, _, err := run(t, "rules", "--family", "Allocator", "--format", "yaml")
	require.NoError(t, err)

	var rows []ruleRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		assert.Equal(t, "allocator", r.Family, r.Name)
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "malloc")
	assert.NotContains(t, names, "free")
}

func TestRulesTable(t *testing.T) {
	out, _, err := run(t, "rules", "malloc", "strcpy")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "malloc "))
	assert.Contains(t, lines[1], "allocsize(0)")
	assert.Contains(t, lines[1], "alloc-family=malloc")
	assert.Contains(t, lines[2], "#0:")

	_, _, err = run(t, "rules", "--format", "xml")
	assert.Error(t, err)
}

func TestDeclareText(t *testing.T) {
	out, stderr, err := run(t, "declare", "strlen")
	require.NoError(t, err)
	assert.Contains(t, out, "declare noundef i64 @strlen(i8* nocapture) argmemonly nofree nounwind readonly willreturn")
	assert.Empty(t, stderr)

	out, _, err = run(t, "declare", "puts", "--got")
	require.NoError(t, err)
	assert.Contains(t, out, "nonlazybind")
}

func TestDeclareSeveralTargetsWithStats(t *testing.T) {
	out, stderr, err := run(t, "declare", "strchr", "-t", "x86_64-linux-gnu", "-t", "s390x-linux-gnu", "--stats", "--timings")
	require.NoError(t, err)

	x86 := strings.Index(out, "; target x86_64-linux-gnu")
	s390x := strings.Index(out, "; target s390x-linux-gnu")
	require.GreaterOrEqual(t, x86, 0)
	require.Greater(t, s390x, x86)
	assert.NotContains(t, out[:s390x], "signext")
	assert.Contains(t, out[s390x:], "signext")

	assert.Contains(t, stderr, "stats for x86_64-linux-gnu: 1 declarations")
	assert.Contains(t, stderr, "nocapture")
	assert.Contains(t, stderr, "timings:")
	assert.Contains(t, stderr, "declare s390x-linux-gnu")
}

func TestDeclareEveryAvailableFunction(t *testing.T) {
	out, _, err := run(t, "declare", "-t", "nvptx64-nvidia-cuda")
	require.NoError(t, err)

	p, err := target.Builtin("nvptx64-nvidia-cuda")
	require.NoError(t, err)
	ti, err := libfunc.NewTargetInfo(p)
	require.NoError(t, err)
	assert.Equal(t, len(ti.Available()), strings.Count(out, "declare "))
}

func TestDeclareReportsUnavailable(t *testing.T) {
	out, stderr, err := run(t, "declare", "read", "strlen", "-t", "x86_64-windows-msvc")
	require.NoError(t, err)
	assert.Contains(t, out, "@strlen")
	assert.NotContains(t, out, "@read")
	assert.Contains(t, stderr, "note: x86_64-windows-msvc: unavailable: read")

	_, stderr, err = run(t, "--quiet", "declare", "read", "-t", "x86_64-windows-msvc")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestDeclareAssertions(t *testing.T) {
	_, _, err := run(t, "declare", "abs", "-t", "s390x-linux-gnu", "--assertions")
	var v *libcall.ContractViolation
	require.ErrorAs(t, err, &v)
	assert.Contains(t, err.Error(), "s390x-linux-gnu")

	_, _, err = run(t, "declare", "abs", "-t", "s390x-linux-gnu")
	assert.NoError(t, err)
}

func TestDeclareRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "declare", "strlen", "--emit", "bitcode")
	assert.Error(t, err)

	_, _, err = run(t, "declare", "strlen", "-t", "vax-dec-ultrix")
	assert.ErrorIs(t, err, target.ErrUnknownTarget)

	_, _, err = run(t, "declare", "strlen", "--emit", "msgpack", "-t", "x86_64-linux-gnu", "-t", "i386-linux-gnu")
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "decls.msgpack")
	_, _, err := run(t, "declare", "strlen", "calloc", "--emit", "msgpack", "-o", file)
	require.NoError(t, err)

	out, _, err := run(t, "inspect", file, "--decl", "calloc")
	require.NoError(t, err)
	assert.Contains(t, out, "@calloc")
	assert.Contains(t, out, "allocsize(0,1)")
	assert.NotContains(t, out, "@strlen")

	_, _, err = run(t, "inspect", file, "--decl", "memcpy")
	assert.Error(t, err)

	multi := filepath.Join(dir, "multi")
	_, _, err = run(t, "declare", "strlen", "--emit", "msgpack", "-o", multi, "-t", "x86_64-linux-gnu", "-t", "i386-linux-gnu")
	require.NoError(t, err)
	out, _, err = run(t, "inspect", filepath.Join(multi, "i386-linux-gnu.msgpack"))
	require.NoError(t, err)
	assert.Contains(t, out, "i32 (i8*)")
}

func TestDeclareTracing(t *testing.T) {
	_, stderr, err := run(t, "--trace-level", "debug", "declare", "strlen")
	require.NoError(t, err)
	assert.Contains(t, stderr, "decl resolve strlen (created)")
	assert.Contains(t, stderr, "driver declare")

	_, stderr, err = run(t, "--trace-level", "debug", "--trace-mode", "ring", "declare", "strlen")
	require.NoError(t, err)
	assert.Contains(t, stderr, "resolve strlen")

	_, _, err = run(t, "--trace-level", "loud", "declare", "strlen")
	assert.Error(t, err)
}

func TestTargets(t *testing.T) {
	out, _, err := run(t, "targets")
	require.NoError(t, err)
	for _, name := range target.BuiltinNames() {
		assert.Contains(t, out, name)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "s390x-linux-gnu ") {
			assert.Contains(t, line, "signext/zeroext")
		}
		if strings.HasPrefix(line, "x86_64-linux-gnu ") {
			assert.Contains(t, line, "x86_fp80")
		}
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "version", "--format", "json")
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "libcall", payload["tool"])
	assert.NotEmpty(t, payload["version"])
	assert.NotEmpty(t, payload["go_version"])

	out, _, err = run(t, "version", "--full")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "libcall "))
	assert.Contains(t, out, "commit: ")
}

func TestColorFlagIsValidated(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--color", "sometimes", "targets"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
