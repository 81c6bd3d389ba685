package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "", Truncate("", 300))
	require.Equal(t, "short", Truncate("short", 300))
	require.Equal(t, "abc", Truncate("abcdef", 3))
	require.Equal(t, "", Truncate("abc", -1))

	long := strings.Repeat("x", 1000)
	require.Len(t, Truncate(long, ExcerptLimit), ExcerptLimit)
}

func TestTruncateCountsCharacters(t *testing.T) {
	s := strings.Repeat("错", 400)
	got := Truncate(s, ExcerptLimit)
	require.Equal(t, ExcerptLimit, utf8.RuneCountInString(got))
	require.True(t, utf8.ValidString(got))
}

func TestCommandError(t *testing.T) {
	err := &CommandError{
		Op:       "updating package sources",
		Command:  "pkg update -y",
		Started:  true,
		ExitCode: 100,
		Stderr:   strings.Repeat("e", 500),
		Err:      ErrCommandFailed,
	}

	require.True(t, errors.Is(err, ErrCommandFailed))
	require.Equal(t, "updating package sources: pkg update -y: exit status 100", err.Error())
	require.Len(t, err.Excerpt(ExcerptLimit), ExcerptLimit)
}

func TestCommandErrorNotStarted(t *testing.T) {
	err := &CommandError{
		Op:       "installing python",
		Command:  "brew install python",
		ExitCode: -1,
		Err:      fmt.Errorf("brew: %w", ErrCommandNotFound),
	}

	require.True(t, errors.Is(err, ErrCommandNotFound))
	require.False(t, errors.Is(err, ErrCommandFailed))
	require.Equal(t, "installing python: brew install python: brew: command not found", err.Error())
	require.Equal(t, "brew: command not found", err.Excerpt(ExcerptLimit))
}

func TestCommandErrorKilled(t *testing.T) {
	err := &CommandError{
		Op:       "installing python",
		Command:  "sudo apt install python3 python3-pip -y",
		Started:  true,
		ExitCode: -1,
		Err:      ErrCommandFailed,
	}

	require.True(t, errors.Is(err, ErrCommandFailed))
	require.Equal(t, "installing python: sudo apt install python3 python3-pip -y: terminated by signal", err.Error())
	require.Equal(t, "", err.Excerpt(ExcerptLimit))
}

func TestFormatCommand(t *testing.T) {
	require.Equal(t, "pkg", FormatCommand("pkg", nil))
	require.Equal(t, "pkg install python -y", FormatCommand("pkg", []string{"install", "python", "-y"}))
}
