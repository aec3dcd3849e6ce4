package app

import (
	"context"
	"sync"
)

// Stage of a session query.
type Stage string

// Session stages.
const (
	StageIdle    Stage = "idle"
	StageLoading Stage = "loading"
	StageReady   Stage = "ready"
	StageFailed  Stage = "failed"
)

// Runner runs insights query for raw user input.
type Runner interface {
	Insights(ctx context.Context, input string) (*Report, error)
}

// RunnerFunc adapts func to Runner interface.
type RunnerFunc func(ctx context.Context, input string) (*Report, error)

// Insights calls f.
func (f RunnerFunc) Insights(ctx context.Context, input string) (*Report, error) {
	return f(ctx, input)
}

// SessionState is a snapshot of session. It's never modified after creation.
type SessionState struct {
	Seq    uint64
	Stage  Stage
	Input  string
	Report *Report
	Err    error
}

// Session tracks the latest of possibly overlapping queries.
//
// Every Run gets a new sequence number and cancels the query started before it.
// Results are applied only if their sequence number is still the latest one,
// so a slow query can't overwrite results of a newer one.
type Session struct {
	runner Runner

	m      sync.Mutex
	seq    uint64
	state  SessionState
	cancel context.CancelFunc
}

// NewSession creates new Session instance.
func NewSession(runner Runner) *Session {
	return &Session{
		runner: runner,
		state:  SessionState{Stage: StageIdle},
	}
}

// Run runs query for given input and blocks until it's done.
// Returns final state of this query and flag telling whether it's still the current one.
func (s *Session) Run(ctx context.Context, input string) (SessionState, bool) {
	ctx, seq := s.start(ctx, input)

	report, err := s.runner.Insights(ctx, input)
	next := SessionState{
		Seq:   seq,
		Input: input,
	}
	if err != nil {
		next.Stage = StageFailed
		next.Err = err
	} else {
		next.Stage = StageReady
		next.Report = report
	}

	return next, s.commit(next)
}

// State returns current session state.
func (s *Session) State() SessionState {
	s.m.Lock()
	defer s.m.Unlock()

	return s.state
}

// Cancel cancels query in progress, if any.
func (s *Session) Cancel() {
	s.m.Lock()
	defer s.m.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) start(ctx context.Context, input string) (context.Context, uint64) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.seq++
	s.state = SessionState{
		Seq:   s.seq,
		Stage: StageLoading,
		Input: input,
	}

	return ctx, s.seq
}

func (s *Session) commit(state SessionState) bool {
	s.m.Lock()
	defer s.m.Unlock()

	if state.Seq != s.seq {
		return false
	}
	s.state = state
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	return true
}
