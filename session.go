package patmatch

import (
	"github.com/npillmayer/patmatch/pattern"
	"github.com/npillmayer/patmatch/result"
)

// Session evaluates cases against a subject. It is created by Match and
// finalized by Result, Else, Cases or Try.
//
// A session is open until a case matches (or an error occurs) and closed
// afterwards. Cases supplied to a closed session are validated and
// registered, but never matched and their handlers never run.
type Session[R any] struct {
	subject    any
	exhaustive bool // report exhaustion on finalization
	matched    bool
	hasDefault bool // a Wildcard or Default case has been registered
	result     R
	err        error // first build error or handler error
	cases      int   // number of cases registered
	finalized  bool
}

// Match starts a session for subject, producing results of type R.
func Match[R any](subject any) *Session[R] {
	return &Session[R]{subject: subject}
}

// Eval matches subject against cases and returns the finalized result.
func Eval[R any](subject any, cases ...Case[R]) (R, error) {
	return Match[R](subject).Cases(cases...)
}

// Exhaustively is Eval in exhaustive mode.
func Exhaustively[R any](subject any, cases ...Case[R]) (R, error) {
	return Match[R](subject).Exhaustive().Cases(cases...)
}

// Exhaustive switches on exhaustiveness checking. It must be called before
// any case is supplied.
func (s *Session[R]) Exhaustive() *Session[R] {
	if s.cases > 0 || s.finalized {
		s.fail(ErrLateExhaustive)
		return s
	}
	s.exhaustive = true
	return s
}

// Matched is true if a case has matched the subject.
func (s *Session[R]) Matched() bool {
	return s.matched
}

func (s *Session[R]) closed() bool {
	return s.matched || s.err != nil
}

func (s *Session[R]) fail(err error) {
	if s.err == nil {
		tracer().Errorf("match of %v: %v", s.subject, err)
		s.err = err
	}
}

// Case supplies the next case. p is converted with pattern.Of. A nil
// handler yields the zero value of R.
func (s *Session[R]) Case(p any, h Handler[R]) *Session[R] {
	if s.finalized {
		s.fail(ErrSessionClosed)
		return s
	}
	pat := pattern.Of(p)
	s.cases++
	if err := pattern.Validate(pat); err != nil {
		s.fail(err)
		return s
	}
	if pattern.IsSentinel(pat) {
		s.hasDefault = true
	}
	if s.closed() {
		return s
	}
	env := pattern.NewEnv()
	if !pattern.Matches(s.subject, pat, env) {
		return s
	}
	tracer().Debugf("case #%d %s matched", s.cases, pat)
	s.matched = true
	if h != nil {
		s.result, s.err = h(env, s.subject)
	}
	return s
}

// With supplies a case yielding r.
func (s *Session[R]) With(p any, r R) *Session[R] {
	return s.Case(p, Value(r))
}

// When supplies a case calling f.
func (s *Session[R]) When(p any, f func(b Bindings, subject any) R) *Session[R] {
	return s.Case(p, Func(f))
}

// Else supplies a fallback case and finalizes the session.
func (s *Session[R]) Else(h Handler[R]) (R, error) {
	return s.Case(Wildcard, h).Result()
}

// Cases supplies every case in order and finalizes the session.
func (s *Session[R]) Cases(cases ...Case[R]) (R, error) {
	for _, c := range cases {
		s.Case(c.Pattern, c.Handler)
	}
	return s.Result()
}

// Result finalizes the session. It returns, in this order of precedence,
// a pattern error or handler error, an *ExhaustionError for an exhaustive
// session without a matching or fallback case, or the result of the
// matching case. Without a matching case the result is the zero value of R.
func (s *Session[R]) Result() (R, error) {
	s.finalized = true
	var zero R
	if s.err != nil {
		return zero, s.err
	}
	if s.exhaustive && !s.matched && !s.hasDefault {
		err := newExhaustionError(s.subject)
		tracer().Infof("exhaustive match failed: %v", err)
		return zero, err
	}
	return s.result, nil
}

// Try finalizes the session into a result.Result.
func (s *Session[R]) Try() result.Result[R] {
	v, err := s.Result()
	return result.From(v, err)
}
