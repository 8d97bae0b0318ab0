package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelPhase, LevelDetail, LevelDebug} {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelScopes(t *testing.T) {
	assert.False(t, LevelError.ShouldEmit(ScopeDriver))
	assert.True(t, LevelPhase.ShouldEmit(ScopeTarget))
	assert.False(t, LevelPhase.ShouldEmit(ScopeModule))
	assert.True(t, LevelDetail.ShouldEmit(ScopeModule))
	assert.False(t, LevelDetail.ShouldEmit(ScopeDecl))
	assert.True(t, LevelDebug.ShouldEmit(ScopeDecl))

	failed := &Event{Kind: KindPoint, Scope: ScopeDecl, Extra: map[string]string{ErrorKey: "boom"}}
	assert.True(t, LevelError.accepts(failed))
	assert.False(t, LevelOff.accepts(failed))
	assert.False(t, LevelError.accepts(&Event{Kind: KindPoint, Scope: ScopeDecl}))
}

func TestParseModeAndFormat(t *testing.T) {
	m, err := ParseMode("Both")
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, m)
	_, err = ParseMode("disk")
	assert.Error(t, err)

	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatNDJSON, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatText(t *testing.T) {
	ev := &Event{
		Seq:      42,
		Kind:     KindPoint,
		Scope:    ScopeDecl,
		ParentID: 7,
		Name:     "resolve strlen",
		Detail:   "created",
		Extra:    map[string]string{"type": "i64 (i8*)", "changed": "true"},
	}
	got := string(FormatEvent(ev, FormatText))
	assert.Equal(t, "[#000042]   • decl resolve strlen (created) {changed=true, type=i64 (i8*)}\n", got)

	root := &Event{Seq: 1, Kind: KindSpanBegin, Scope: ScopeDriver, Name: "declare"}
	assert.Equal(t, "[#000001] → driver declare\n", string(FormatEvent(root, FormatText)))
}

func TestFormatNDJSON(t *testing.T) {
	ev := &Event{
		Time:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Seq:    3,
		Kind:   KindSpanEnd,
		Scope:  ScopeTarget,
		SpanID: 9,
		Name:   "target s390x-linux-gnu",
	}
	data := FormatEvent(ev, FormatNDJSON)
	require.True(t, bytes.HasSuffix(data, []byte("\n")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "end", got["kind"])
	assert.Equal(t, "target", got["scope"])
	assert.Equal(t, float64(9), got["span_id"])
	assert.NotContains(t, got, "parent_id")
	assert.Equal(t, "2024-01-02T03:04:05.000000Z", got["time"])
}

func TestStreamTracerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatAuto)

	span := Begin(tr, ScopeTarget, "target x86_64-linux-gnu", 0)
	Point(tr, ScopeDecl, "resolve strlen", "created", span.ID(), nil)
	Point(tr, ScopeDecl, "resolve strdup", "unavailable", span.ID(), map[string]string{ErrorKey: "unavailable: strdup"})
	span.WithExtra("decls", "1").End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "→ target target x86_64-linux-gnu")
	assert.Contains(t, lines[1], "resolve strdup (unavailable)")
	assert.Contains(t, lines[2], "{decls=1}")
	require.NoError(t, tr.Close())
}

func TestSpanBelowLevelIsNop(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	span := Begin(ring, ScopeModule, "module", 0)
	assert.Zero(t, span.ID())
	assert.Zero(t, span.End("done"))
	assert.Same(t, span, span.WithExtra("k", "v"))
	assert.Empty(t, ring.Snapshot())

	var nilSpan *Span
	assert.Zero(t, nilSpan.ID())
	assert.Zero(t, nilSpan.End(""))
	Begin(nil, ScopeDriver, "x", 0).End("")
	Point(nil, ScopeDriver, "x", "", 0, nil)
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeDecl, name, "", 0, nil)
	}
	events := ring.Snapshot()
	require.Len(t, events, 3)
	assert.Equal(t, []string{"c", "d", "e"}, []string{events[0].Name, events[1].Name, events[2].Name})
	assert.Less(t, events[0].Seq, events[1].Seq)
	assert.Less(t, events[1].Seq, events[2].Seq)

	var buf bytes.Buffer
	require.NoError(t, ring.Dump(&buf, FormatText))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestMultiTracerCopiesEvents(t *testing.T) {
	a := NewRingTracer(4, LevelDebug)
	b := NewRingTracer(4, LevelDebug)
	multi := NewMultiTracer(LevelDebug, a, b)
	assert.True(t, multi.Enabled())

	Point(multi, ScopeDecl, "resolve puts", "existing", 0, nil)
	ea, eb := a.Snapshot(), b.Snapshot()
	require.Len(t, ea, 1)
	require.Len(t, eb, 1)
	assert.Equal(t, ea[0].Name, eb[0].Name)
	assert.NotEqual(t, ea[0].Seq, eb[0].Seq)
	require.NoError(t, multi.Flush())
	require.NoError(t, multi.Close())
}

func TestNewPicksBackend(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	tr, err = New(Config{Level: LevelDebug, Mode: ModeRing})
	require.NoError(t, err)
	assert.IsType(t, &RingTracer{}, tr)

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf})
	require.NoError(t, err)
	assert.IsType(t, &MultiTracer{}, tr)
	Point(tr, ScopeDecl, "resolve abs", "", 0, nil)
	assert.Contains(t, buf.String(), "resolve abs")

	_, err = New(Config{Level: LevelDebug})
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	assert.Equal(t, Nop, FromContext(context.Background()))

	ring := NewRingTracer(1, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	assert.Same(t, ring, FromContext(ctx))

	assert.Equal(t, SpanContext{}, CurrentSpan(context.Background()))
}

func TestBeginChildNestsSpans(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	ctx, outer := BeginChild(ctx, ScopeDriver, "declare")
	require.NotZero(t, outer.ID())
	assert.Equal(t, outer.ID(), CurrentSpan(ctx).SpanID)

	inner, child := BeginChild(ctx, ScopeTarget, "target x")
	assert.Equal(t, child.ID(), CurrentSpan(inner).SpanID)
	assert.Equal(t, outer.ID(), CurrentSpan(ctx).SpanID)
	child.End("")
	outer.End("")

	var parent uint64
	for _, ev := range ring.Snapshot() {
		if ev.SpanID == child.ID() && ev.Kind == KindSpanBegin {
			parent = ev.ParentID
		}
	}
	assert.Equal(t, outer.ID(), parent)
}

func TestBeginChildSkipsSuppressedScopes(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)
	ctx := WithTracer(context.Background(), ring)

	ctx, outer := BeginChild(ctx, ScopeDriver, "declare")
	hidden, decl := BeginChild(ctx, ScopeDecl, "resolve strlen")
	assert.Zero(t, decl.ID())
	assert.Equal(t, outer.ID(), CurrentSpan(hidden).SpanID)
}
