package proxy

import (
	"bytes"
	"context"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shExecutor runs the invocation args through /bin/sh instead of the
// container runtime, so stream and exit code handling can be exercised
// without a daemon.
func shExecutor() (*Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	e := &Executor{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Binary: "/bin/sh",
	}
	return e, &stdout, &stderr
}

func TestRun_PropagatesExitCode(t *testing.T) {
	e, stdout, stderr := shExecutor()

	code, err := e.Run(context.Background(), Invocation{
		Args: []string{"-c", "printf out1; printf err1 >&2; printf out2; exit 3"},
	})

	require.NoError(t, err, "a non-zero subordinate exit is not an executor error")
	assert.Equal(t, 3, code)
	assert.Equal(t, "out1out2", stdout.String(), "stdout bytes forwarded in order")
	assert.Equal(t, "err1", stderr.String(), "stderr kept separate from stdout")
}

func TestRun_ZeroExit(t *testing.T) {
	e, stdout, _ := shExecutor()

	code, err := e.Run(context.Background(), Invocation{Args: []string{"-c", "echo ok"}})

	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "ok\n", stdout.String())
}

func TestRun_ForwardsStdin(t *testing.T) {
	e, stdout, _ := shExecutor()
	e.Stdin = strings.NewReader("hello from the host")

	code, err := e.Run(context.Background(), Invocation{Args: []string{"-c", "cat"}})

	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "hello from the host", stdout.String())
}

func TestRun_StartFailureIsExecutionError(t *testing.T) {
	e, _, _ := shExecutor()
	e.Binary = "/nonexistent/binary/for/this/test"

	_, err := e.Run(context.Background(), Invocation{Args: []string{"-c", "true"}})

	var eerr *ExecutionError
	require.ErrorAs(t, err, &eerr)
}

func TestRun_ForwardsTerminationSignal(t *testing.T) {
	e, _, _ := shExecutor()
	e.notify = func(c chan<- os.Signal, sig ...os.Signal) {
		go func() {
			time.Sleep(150 * time.Millisecond)
			c <- syscall.SIGTERM
		}()
	}

	code, err := e.Run(context.Background(), Invocation{
		Args: []string{"-c", "trap 'exit 42' TERM; while :; do sleep 0.05; done"},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, code, "subordinate saw the forwarded signal and chose its own exit")
}

func TestRun_NoTimeoutOnLongCommands(t *testing.T) {
	e, stdout, _ := shExecutor()

	// Longer than any internal polling interval; must simply complete.
	code, err := e.Run(context.Background(), Invocation{
		Args: []string{"-c", "sleep 0.3; printf done"},
	})

	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "done", stdout.String())
}
