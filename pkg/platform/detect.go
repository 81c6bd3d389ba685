// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Label identifies the environment the installer is running in
type Label string

const (
	// LabelTermux is the Termux terminal emulator on Android
	LabelTermux Label = "termux"
	// LabelWindows is any Windows host
	LabelWindows Label = "windows"
	// LabelMacOS is any macOS host
	LabelMacOS Label = "macos"
	// LabelLinux is a Linux host other than Termux
	LabelLinux Label = "linux"
	// LabelUnknown is everything else
	LabelUnknown Label = "unknown"
)

// AllLabels contains every label the classifier can produce
var AllLabels = []Label{
	LabelTermux,
	LabelWindows,
	LabelMacOS,
	LabelLinux,
	LabelUnknown,
}

const (
	// TermuxVersionVar is exported by Termux into every session
	TermuxVersionVar = "TERMUX_VERSION"
	// TermuxHomeMarker appears in the home path of every Termux install
	TermuxHomeMarker = "/data/data/com.termux/"

	PlatformWindows = "Windows"
	PlatformDarwin  = "Darwin"
	PlatformLinux   = "Linux"
)

// knownManagers are the package managers pyup knows how to drive
var knownManagers = []string{"pkg", "brew", "apt", "yum"}

// Classify labels the environment. Termux markers win over the platform
// name; anything unrecognised is LabelUnknown.
func Classify(env Environment) Label {
	if isTermux(env) {
		return LabelTermux
	}

	switch env.Platform() {
	case PlatformWindows:
		return LabelWindows
	case PlatformDarwin:
		return LabelMacOS
	case PlatformLinux:
		return LabelLinux
	default:
		return LabelUnknown
	}
}

func isTermux(env Environment) bool {
	if env.Getenv(TermuxVersionVar) != "" {
		return true
	}
	home, err := env.UserHomeDir()
	if err != nil {
		return false
	}
	return strings.Contains(home, TermuxHomeMarker)
}

// ParseLabel converts a configured label name into a Label
func ParseLabel(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("unknown environment %q (want one of %v)", s, AllLabels)
	}
	return l, nil
}

// String returns the string representation of the label
func (l Label) String() string {
	return string(l)
}

// IsValid checks if the label is one of AllLabels
func (l Label) IsValid() bool {
	for _, valid := range AllLabels {
		if l == valid {
			return true
		}
	}
	return false
}

// Platform represents the detected system platform
type Platform struct {
	Label     Label    // Classified environment
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Known package managers found on PATH
}

// Detect classifies env and reports which package managers lookPath can
// find. A nil lookPath searches the real PATH.
func Detect(env Environment, lookPath func(string) (string, error)) *Platform {
	p := &Platform{
		Label:     Classify(env),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, name := range knownManagers {
		if commandExists(lookPath, name) {
			p.Available = append(p.Available, name)
		}
	}

	return p
}

// Has reports whether the named package manager was found
func (p *Platform) Has(manager string) bool {
	return contains(p.Available, manager)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s on %s/%s (available: %v)",
		p.Label, p.OS, p.Arch, p.Available)
}
