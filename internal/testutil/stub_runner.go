// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// StubRunner is a docker.Runner double. Responses are queued per exact
// command line; every call is recorded with its extra environment so
// tests can assert which runtime operations ran and how often.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]stubResponse
	defaults map[string]stubResponse
	calls    []recordedCall
}

type stubResponse struct {
	out string
	err error
}

type recordedCall struct {
	cmdline string
	env     []string
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]stubResponse),
		defaults: make(map[string]stubResponse),
	}
}

// Stub queues one response for the given command line ("docker inspect ...").
func (s *StubRunner) Stub(cmdline string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[cmdline] = append(s.stubs[cmdline], stubResponse{out: out, err: err})
}

// StubDefault sets the fallback response used once queued responses are
// exhausted.
func (s *StubRunner) StubDefault(cmdline string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[cmdline] = stubResponse{out: out, err: err}
}

func (s *StubRunner) Run(ctx context.Context, env []string, name string, args ...string) (string, error) {
	key := name + " " + strings.Join(args, " ")
	s.mu.Lock()
	s.calls = append(s.calls, recordedCall{cmdline: key, env: env})
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			s.mu.Unlock()
			return resp.out, resp.err
		}
		s.mu.Unlock()
		return "", fmt.Errorf("unexpected runtime call: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	s.mu.Unlock()
	return resp.out, resp.err
}

func (s *StubRunner) RunStreaming(ctx context.Context, env []string, w io.Writer, name string, args ...string) error {
	out, err := s.Run(ctx, env, name, args...)
	if out != "" {
		fmt.Fprint(w, out)
	}
	return err
}

// Calls returns every recorded command line in order.
func (s *StubRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]string, len(s.calls))
	for i, c := range s.calls {
		lines[i] = c.cmdline
	}
	return lines
}

// CallsFor counts recorded calls exactly matching the command line.
func (s *StubRunner) CallsFor(cmdline string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, c := range s.calls {
		if c.cmdline == cmdline {
			count++
		}
	}
	return count
}

// CallsMatching counts recorded calls with the given prefix.
func (s *StubRunner) CallsMatching(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, c := range s.calls {
		if strings.HasPrefix(c.cmdline, prefix) {
			count++
		}
	}
	return count
}

// EnvFor returns the extra environment of the first recorded call
// matching the command line, or nil.
func (s *StubRunner) EnvFor(cmdline string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c.cmdline == cmdline {
			return append([]string(nil), c.env...)
		}
	}
	return nil
}
