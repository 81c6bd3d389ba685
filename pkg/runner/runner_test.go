package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func newTestRunner() *ExecRunner {
	return NewExecRunner(log.New(io.Discard))
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
}

func TestExecRunnerCapturesStreams(t *testing.T) {
	skipOnWindows(t)

	res, err := newTestRunner().Run(context.Background(), Cmd("sh", "-c", "echo out; echo err >&2"))
	require.NoError(t, err)
	require.True(t, res.Success())
	require.Equal(t, "out\n", res.Stdout)
	require.Equal(t, "err\n", res.Stderr)
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	res, err := newTestRunner().Run(context.Background(), Cmd("sh", "-c", "echo broken >&2; exit 3"))
	require.NoError(t, err)
	require.False(t, res.Success())
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "broken\n", res.Stderr)
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	r := newTestRunner()

	_, err := r.Run(context.Background(), Cmd("pyup-no-such-binary-for-tests", "--version"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = r.Run(context.Background(), Cmd("/nonexistent/dir/pyup-binary"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = r.LookPath("pyup-no-such-binary-for-tests")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestExecRunnerInteractiveTeesOutput(t *testing.T) {
	skipOnWindows(t)

	var stdout, stderr bytes.Buffer
	r := newTestRunner()
	r.Stdin = strings.NewReader("typed\n")
	r.Stdout = &stdout
	r.Stderr = &stderr

	res, err := r.Run(context.Background(), Command{
		Name:        "sh",
		Args:        []string{"-c", "read line; echo got $line; echo warn >&2"},
		Interactive: true,
	})
	require.NoError(t, err)
	require.Equal(t, "got typed\n", res.Stdout)
	require.Equal(t, "got typed\n", stdout.String())
	require.Equal(t, "warn\n", res.Stderr)
	require.Equal(t, "warn\n", stderr.String())
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "brew", Cmd("brew").String())
	require.Equal(t, "sudo apt install python3 -y", Cmd("sudo", "apt", "install", "python3", "-y").String())
}

func TestDryRunner(t *testing.T) {
	var out bytes.Buffer
	r := &DryRunner{Out: &out}

	res, err := r.Run(context.Background(), Cmd("pkg", "update", "-y"))
	require.NoError(t, err)
	require.True(t, res.Success())
	require.Equal(t, "  $ pkg update -y\n", out.String())

	path, err := r.LookPath("brew")
	require.NoError(t, err)
	require.Equal(t, "brew", path)
}
