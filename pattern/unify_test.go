package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/patmatch/pred"
	"github.com/npillmayer/patmatch/value"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	for _, v := range []any{nil, value.Undefined, 0, "_", []any{}, map[string]any{}} {
		assert.True(t, Matches(v, Wildcard, NewEnv()))
		assert.True(t, Matches(v, Default, NewEnv()))
	}
	assert.True(t, IsSentinel(Wildcard))
	assert.True(t, IsSentinel(Default))
	assert.False(t, IsSentinel(Literal("_")), "structurally similar literal is not a sentinel")
	assert.False(t, IsSentinel(&sentinel{name: "_"}), "sentinels compare by identity")
}

func TestSameValueLiterals(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.True(t, Matches(math.NaN(), Literal(math.NaN()), NewEnv()))
	assert.False(t, Matches(negZero, Literal(0), NewEnv()))
	assert.True(t, Matches(negZero, Literal(negZero), NewEnv()))
	assert.True(t, Matches(nil, Literal(nil), NewEnv()))
	assert.False(t, Matches(value.Undefined, Literal(nil), NewEnv()))
	assert.True(t, Matches(true, Of(true), NewEnv()))
	sym := value.NewSymbol("test")
	assert.True(t, Matches(sym, Of(sym), NewEnv()))
}

func TestGuard(t *testing.T) {
	calls := 0
	big := Guard(func(v any) bool {
		calls++
		n, ok := value.AsNumber(v)
		return ok && n > 10
	})
	assert.False(t, Matches(5, big, NewEnv()))
	assert.True(t, Matches(50, big, NewEnv()))
	assert.Equal(t, 2, calls)
	assert.True(t, Matches(2, Of(pred.OneOf(1, 2, 3)), NewEnv()))
	assert.False(t, Matches(4, Of(pred.OneOf(1, 2, 3)), NewEnv()))
	assert.Panics(t, func() {
		Matches(1, Guard(func(any) bool { panic("guard failed") }), NewEnv())
	})
}

func TestTextPattern(t *testing.T) {
	url := Of(regexp.MustCompile(`^https?://`))
	assert.True(t, Matches("http://example.org", url, NewEnv()))
	assert.False(t, Matches("mailto:ana@example.org", url, NewEnv()))
	assert.False(t, Matches(42, url, NewEnv()), "text patterns never match non-text")
	assert.Equal(t, "/^https?:///", url.String())
}

func TestOneOfPattern(t *testing.T) {
	p := OneOf("GET", "HEAD")
	assert.True(t, Matches("HEAD", p, NewEnv()))
	assert.False(t, Matches("POST", p, NewEnv()))
	assert.False(t, Matches(math.Copysign(0, -1), OneOf(0, 1), NewEnv()))
	assert.True(t, Matches(math.NaN(), OneOf(math.NaN()), NewEnv()))
}

func TestSequenceExactLength(t *testing.T) {
	p := Sequence(1, 2, 3)
	assert.True(t, Matches([]any{1, 2, 3}, p, NewEnv()))
	assert.True(t, Matches([]int{1, 2, 3}, p, NewEnv()))
	assert.False(t, Matches([]any{1, 2}, p, NewEnv()))
	assert.False(t, Matches([]any{1, 2, 3, 4}, p, NewEnv()))
	assert.False(t, Matches("123", p, NewEnv()))
	assert.True(t, Matches([]any{}, Sequence(), NewEnv()))
	assert.True(t, Matches([]any{1, 2, 3, 4}, Sequence(1, Wildcard, 3, Wildcard), NewEnv()))
}

func TestSequenceShortCircuits(t *testing.T) {
	calls := 0
	counting := func(any) bool { calls++; return true }
	assert.False(t, Matches([]any{0, 1, 2}, Sequence(1, counting, counting), NewEnv()))
	assert.Equal(t, 0, calls)
}

func TestRestCapture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch.pattern")
	defer teardown()
	//
	p := Sequence(1, Rest("rest"), 5)
	env := NewEnv()
	require.True(t, Matches([]any{1, 2, 3, 4, 5}, p, env))
	assert.Equal(t, []any{2, 3, 4}, env["rest"])
	//
	env = NewEnv()
	require.True(t, Matches([]any{1, 5}, p, env))
	assert.Equal(t, []any{}, env["rest"])
	//
	assert.False(t, Matches([]any{1}, p, NewEnv()))
	assert.False(t, Matches([]any{1, 2, 3}, p, NewEnv()))
	//
	env = NewEnv()
	require.True(t, Matches([]any{"cmd", "-v", "x"}, Sequence("$head", Rest("args")), env))
	assert.Equal(t, "cmd", env["head"])
	assert.Equal(t, []any{"-v", "x"}, env["args"])
	//
	env = NewEnv()
	require.True(t, Matches([]any{1, 2, 3}, Sequence(Rest(""), 3), env))
	assert.Empty(t, env)
}

func TestRestSliceIsACopy(t *testing.T) {
	subject := []any{1, 2, 3}
	env := NewEnv()
	require.True(t, Matches(subject, Sequence(Rest("xs")), env))
	xs, _ := env.Sequence("xs")
	xs[0] = 99
	assert.Equal(t, 1, subject[0])
}

func TestRecordSubset(t *testing.T) {
	assert.True(t, Matches(map[string]any{"a": 1, "b": 2}, Of(map[string]any{"a": 1}), NewEnv()))
	assert.False(t, Matches(map[string]any{"a": 2}, Record(Fields{"a": 1}), NewEnv()))
	assert.False(t, Matches([]any{1}, Record(Fields{}), NewEnv()))
	assert.False(t, Matches(nil, Record(Fields{}), NewEnv()))
	assert.True(t, Matches(map[string]any{}, Record(Fields{}), NewEnv()))
	assert.True(t, Matches(map[string]int{"a": 1, "b": 2}, Record(Fields{"b": 2}), NewEnv()))
}

func TestRecordCapture(t *testing.T) {
	env := NewEnv()
	subject := map[string]any{"name": "Ana", "role": "admin"}
	require.True(t, Matches(subject, Record(Fields{"name": Capture("n")}), env))
	assert.Equal(t, "Ana", env["n"])
	//
	env = NewEnv()
	require.True(t, Matches(map[string]any{"a": 1}, Record(Fields{"a": 1, "b": "$x"}), env))
	assert.True(t, value.IsUndefined(env["x"]), "missing key binds Undefined")
	assert.True(t, env.Has("x"))
}

func TestRecordWildcardAndMissingKeys(t *testing.T) {
	subject := map[string]any{"a": map[string]any{"b": map[string]any{"c": 123}}}
	p := Record(Fields{"a": Fields{"b": Fields{"c": Wildcard}}})
	assert.True(t, Matches(subject, p, NewEnv()))
	assert.True(t, Matches(map[string]any{}, Record(Fields{"gone": Default}), NewEnv()))
	assert.True(t, Matches(map[string]any{}, Record(Fields{"gone": value.Undefined}), NewEnv()))
	assert.False(t, Matches(map[string]any{}, Record(Fields{"gone": nil}), NewEnv()))
}

func TestNestedCaptures(t *testing.T) {
	subject := map[string]any{
		"type":    "ADD_ITEM",
		"payload": map[string]any{"id": 7, "tags": []any{"x", "y"}},
	}
	p := Record(Fields{
		"type": "ADD_ITEM",
		"payload": Fields{
			"id":   "$i",
			"tags": []any{"$first", Rest("others")},
		},
	})
	env := NewEnv()
	require.True(t, Matches(subject, p, env))
	i, _ := env.Int("i")
	assert.Equal(t, 7, i)
	first, _ := env.Text("first")
	assert.Equal(t, "x", first)
	assert.Equal(t, []any{"y"}, env.Get("others"))
}

func TestCaptureOutsideRecords(t *testing.T) {
	env := NewEnv()
	require.True(t, Matches(42, Capture("all"), env))
	assert.Equal(t, 42, env["all"])
	assert.Equal(t, Literal("$x").String(), Of("$x").String(), "top-level text stays literal")
}

func TestSigilOnlyIsLiteral(t *testing.T) {
	assert.True(t, Matches([]any{"$"}, Sequence("$"), NewEnv()))
	assert.False(t, Matches([]any{"x"}, Sequence("$"), NewEnv()))
}

func TestEnvAccessors(t *testing.T) {
	env := NewEnv()
	env.bind("n", nil)
	v, ok := env.Lookup("n").Get()
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = env.Lookup("unbound").Get()
	assert.False(t, ok)
	assert.True(t, value.IsUndefined(env.Get("unbound")))
	_, ok = env.Number("n")
	assert.False(t, ok)
}

func TestEnvInt(t *testing.T) {
	env := NewEnv()
	env.bind("i", 7.9)
	env.bind("neg", -3)
	env.bind("nan", math.NaN())
	env.bind("inf", math.Inf(1))
	env.bind("-inf", math.Inf(-1))
	env.bind("huge", 1e300)
	env.bind("text", "7")
	i, ok := env.Int("i")
	assert.True(t, ok)
	assert.Equal(t, 7, i)
	i, ok = env.Int("neg")
	assert.True(t, ok)
	assert.Equal(t, -3, i)
	for _, name := range []string{"nan", "inf", "-inf", "huge", "text", "unbound"} {
		i, ok = env.Int(name)
		assert.False(t, ok, "%s is not an int", name)
		assert.Equal(t, 0, i)
	}
}

func TestValidate(t *testing.T) {
	valid := []Pattern{
		Wildcard,
		Sequence(1, Rest("r"), 2),
		Record(Fields{"a": "$a", "b": []any{"$b", Rest("c")}}),
		Sequence(Rest(""), Sequence(Rest(""))),
	}
	for _, p := range valid {
		assert.NoError(t, Validate(p), "pattern %s", p)
	}
	invalid := []Pattern{
		nil,
		Sequence(Rest("a"), Rest("b")),
		Rest("r"),
		Record(Fields{"a": Rest("r")}),
		Record(Fields{"a": "$x", "b": "$x"}),
		Sequence("$x", Rest("x")),
		Capture(""),
		Guard(nil),
		Text(nil),
	}
	for _, p := range invalid {
		err := Validate(p)
		if assert.Error(t, err, "pattern %v", p) {
			assert.True(t, errors.Is(err, ErrMalformedPattern))
		}
	}
}

func TestMatchesPanicsOnRestOutsideSequence(t *testing.T) {
	assert.Panics(t, func() {
		Matches(1, Rest("r"), NewEnv())
	})
}

func TestDump(t *testing.T) {
	p := Record(Fields{
		"type":    OneOf("ADD", "DEL"),
		"payload": []any{"$id", Rest("more")},
	})
	out := Dump(p)
	t.Logf("\n%s", out)
	assert.True(t, strings.Contains(out, "record"))
	assert.True(t, strings.Contains(out, `type: oneOf("ADD", "DEL")`))
	assert.True(t, strings.Contains(out, "0: $id"))
	assert.True(t, strings.Contains(out, "1: ...$more"))
	assert.Equal(t, `{payload: [$id, ...$more], type: oneOf("ADD", "DEL")}`, p.String())
}

// recorder is a tracer collecting debug messages. It is its own selector.
type recorder struct {
	level tracing.TraceLevel
	out   io.Writer
}

func (r *recorder) Select(string) tracing.Trace { return r }

func (r *recorder) Debugf(msg string, args ...interface{}) {
	if r.level >= tracing.LevelDebug {
		fmt.Fprintf(r.out, msg+"\n", args...)
	}
}

func (r *recorder) Infof(string, ...interface{})           {}
func (r *recorder) Errorf(string, ...interface{})          {}
func (r *recorder) P(string, interface{}) tracing.Trace    { return r }
func (r *recorder) SetTraceLevel(level tracing.TraceLevel) { r.level = level }
func (r *recorder) GetTraceLevel() tracing.TraceLevel      { return r.level }
func (r *recorder) SetOutput(w io.Writer)                  { r.out = w }

func TestValidateTracesDump(t *testing.T) {
	buf := &bytes.Buffer{}
	rec := &recorder{level: tracing.LevelDebug, out: buf}
	tracing.SetTraceSelector(rec)
	defer tracing.SetTraceSelector(nil)
	//
	p := Record(Fields{"a": Sequence(Rest("r"), Rest("s"))})
	require.Error(t, Validate(p))
	out := buf.String()
	t.Logf("trace: %s", out)
	assert.True(t, strings.Contains(out, "invalid pattern"))
	assert.True(t, strings.Contains(out, Dump(p)), "rejected pattern is dumped as a tree")
	//
	buf.Reset()
	rec.SetTraceLevel(tracing.LevelInfo)
	require.Error(t, Validate(p))
	assert.Empty(t, buf.String())
}
