// pkg/core/package.go
package core

// Report is what a completed install run has to show the user
type Report struct {
	Runtime          string // Registry entry name (e.g. "python")
	Backend          string // Which backend performed the install
	RuntimeBinary    string // Executable queried for the runtime version
	RuntimeVersion   string // Its --version output, possibly empty
	InstallerBinary  string // Executable queried for the installer version
	InstallerVersion string // Its --version output, possibly empty
	Manual           bool   // Instructions were printed, nothing was installed
}
