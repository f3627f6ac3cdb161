package testutil

import (
	"strings"
	"sync"

	"github.com/corky-dev/corky/pkg/executor"
)

// ScriptedExecutor implements executor.Executor with canned responses.
//
// Rules match when the space-joined pattern occurs in the space-joined
// argv. The most recently added matching rule wins, so tests can set broad
// defaults first and override specific calls afterwards. Unmatched calls
// succeed with empty output.
type ScriptedExecutor struct {
	mu    sync.Mutex
	calls [][]string
	rules []rule
}

type rule struct {
	pattern string
	result  executor.Result
	err     error
	effect  func(argv []string)
}

// NewScriptedExecutor creates an executor where every command succeeds.
func NewScriptedExecutor() *ScriptedExecutor {
	return &ScriptedExecutor{}
}

// On scripts the result returned for calls matching pattern.
func (s *ScriptedExecutor) On(result executor.Result, pattern ...string) *ScriptedExecutor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule{pattern: strings.Join(pattern, " "), result: result})
	return s
}

// Stdout scripts a successful call printing out.
func (s *ScriptedExecutor) Stdout(out string, pattern ...string) *ScriptedExecutor {
	return s.On(executor.Result{Stdout: out}, pattern...)
}

// Fail scripts a non-zero exit with stderr for calls matching pattern.
func (s *ScriptedExecutor) Fail(code int, stderr string, pattern ...string) *ScriptedExecutor {
	return s.On(executor.Result{ExitCode: code, Stderr: stderr}, pattern...)
}

// Error scripts a spawn failure (the tool could not be started).
func (s *ScriptedExecutor) Error(err error, pattern ...string) *ScriptedExecutor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule{pattern: strings.Join(pattern, " "), err: err})
	return s
}

// Effect runs fn whenever a call matches pattern, before its result is
// returned. Use it to mimic side effects such as git mv moving a directory.
func (s *ScriptedExecutor) Effect(fn func(argv []string), pattern ...string) *ScriptedExecutor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule{pattern: strings.Join(pattern, " "), effect: fn})
	return s
}

// Run implements executor.Executor.
func (s *ScriptedExecutor) Run(argv ...string) (executor.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, append([]string(nil), argv...))
	joined := strings.Join(argv, " ")

	var effects []func([]string)
	var response *rule
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		if !strings.Contains(joined, r.pattern) {
			continue
		}
		if r.effect != nil {
			effects = append(effects, r.effect)
			continue
		}
		if response == nil {
			response = &s.rules[i]
		}
	}
	s.mu.Unlock()

	for _, fn := range effects {
		fn(argv)
	}
	if response == nil {
		return executor.Result{}, nil
	}
	return response.result, response.err
}

// Calls returns every recorded argv joined by spaces, in call order.
func (s *ScriptedExecutor) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = strings.Join(c, " ")
	}
	return out
}

// Count returns how many calls matched pattern.
func (s *ScriptedExecutor) Count(pattern ...string) int {
	needle := strings.Join(pattern, " ")
	n := 0
	for _, c := range s.Calls() {
		if strings.Contains(c, needle) {
			n++
		}
	}
	return n
}

// Ran reports whether any call matched pattern.
func (s *ScriptedExecutor) Ran(pattern ...string) bool {
	return s.Count(pattern...) > 0
}

// IndexOf returns the position of the first call matching pattern, or -1.
func (s *ScriptedExecutor) IndexOf(pattern ...string) int {
	needle := strings.Join(pattern, " ")
	for i, c := range s.Calls() {
		if strings.Contains(c, needle) {
			return i
		}
	}
	return -1
}

// Reset forgets recorded calls but keeps the rules.
func (s *ScriptedExecutor) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}
