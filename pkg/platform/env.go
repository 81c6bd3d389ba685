// pkg/platform/env.go
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Environment is the read-only view of the process environment the
// classifier works from.
type Environment interface {
	// Getenv returns the value of the named variable, "" when unset
	Getenv(name string) string

	// UserHomeDir resolves the current user's home directory
	UserHomeDir() (string, error)

	// Platform returns the OS name as "Windows", "Darwin", "Linux", ...
	Platform() string
}

// HostEnvironment reads the real process environment
type HostEnvironment struct{}

// Getenv implements Environment
func (HostEnvironment) Getenv(name string) string {
	return os.Getenv(name)
}

// UserHomeDir implements Environment
func (HostEnvironment) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Platform implements Environment
func (HostEnvironment) Platform() string {
	return platformName(runtime.GOOS)
}

// platformName maps a GOOS value to the conventional system name
func platformName(goos string) string {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}
