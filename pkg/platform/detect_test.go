package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	vars     map[string]string
	home     string
	homeErr  error
	platform string
}

func (f fakeEnv) Getenv(name string) string { return f.vars[name] }
func (f fakeEnv) UserHomeDir() (string, error) { return f.home, f.homeErr }
func (f fakeEnv) Platform() string { return f.platform }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		env      fakeEnv
		expected Label
	}{
		{
			name:     "windows",
			env:      fakeEnv{home: `C:\Users\me`, platform: "Windows"},
			expected: LabelWindows,
		},
		{
			name:     "darwin",
			env:      fakeEnv{home: "/Users/me", platform: "Darwin"},
			expected: LabelMacOS,
		},
		{
			name:     "linux",
			env:      fakeEnv{home: "/home/me", platform: "Linux"},
			expected: LabelLinux,
		},
		{
			name:     "termux version variable",
			env:      fakeEnv{vars: map[string]string{TermuxVersionVar: "0.118.0"}, home: "/home/me", platform: "Linux"},
			expected: LabelTermux,
		},
		{
			name:     "termux home path",
			env:      fakeEnv{home: "/data/data/com.termux/files/home", platform: "Linux"},
			expected: LabelTermux,
		},
		{
			name:     "home resolution error",
			env:      fakeEnv{homeErr: errors.New("no home"), platform: "Linux"},
			expected: LabelLinux,
		},
		{
			name:     "freebsd",
			env:      fakeEnv{home: "/home/me", platform: "Freebsd"},
			expected: LabelUnknown,
		},
		{
			name:     "empty platform",
			env:      fakeEnv{},
			expected: LabelUnknown,
		},
		{
			name:     "lowercase platform is not matched",
			env:      fakeEnv{platform: "linux"},
			expected: LabelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Classify(tt.env))
		})
	}
}

func TestClassifyTermuxWinsOverPlatform(t *testing.T) {
	for _, platform := range []string{"Windows", "Darwin", "Linux", "Plan9", ""} {
		t.Run(platform, func(t *testing.T) {
			env := fakeEnv{
				vars:     map[string]string{TermuxVersionVar: "1"},
				home:     "/somewhere/else",
				platform: platform,
			}
			require.Equal(t, LabelTermux, Classify(env))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	homes := []string{"", "/home/me", "/data/data/com.termux/files/home", `C:\Users\me`}
	platforms := []string{"", "Windows", "Darwin", "Linux", "Java", "windows"}
	termux := []string{"", "0.118.0"}

	for _, home := range homes {
		for _, platform := range platforms {
			for _, version := range termux {
				env := fakeEnv{
					vars:     map[string]string{TermuxVersionVar: version},
					home:     home,
					platform: platform,
				}
				require.True(t, Classify(env).IsValid(), "home=%q platform=%q termux=%q", home, platform, version)
			}
		}
	}
}

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel(" MacOS ")
	require.NoError(t, err)
	require.Equal(t, LabelMacOS, l)

	l, err = ParseLabel("unknown")
	require.NoError(t, err)
	require.Equal(t, LabelUnknown, l)

	_, err = ParseLabel("solaris")
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	env := fakeEnv{platform: "Linux"}

	l, err := Resolve(env, "")
	require.NoError(t, err)
	require.Equal(t, LabelLinux, l)

	l, err = Resolve(env, "windows")
	require.NoError(t, err)
	require.Equal(t, LabelWindows, l)

	_, err = Resolve(env, "beos")
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	lookPath := func(name string) (string, error) {
		if name == "apt" || name == "yum" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	p := Detect(fakeEnv{platform: "Linux"}, lookPath)
	require.Equal(t, LabelLinux, p.Label)
	require.Equal(t, []string{"apt", "yum"}, p.Available)
	require.True(t, p.Has("apt"))
	require.False(t, p.Has("brew"))
	require.Contains(t, p.String(), "linux on ")
}

func TestPlatformName(t *testing.T) {
	require.Equal(t, "Windows", platformName("windows"))
	require.Equal(t, "Darwin", platformName("darwin"))
	require.Equal(t, "Linux", platformName("linux"))
	require.Equal(t, "Freebsd", platformName("freebsd"))
	require.Equal(t, "", platformName(""))
}
