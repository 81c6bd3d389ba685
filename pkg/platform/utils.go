// pkg/platform/utils.go
package platform

import (
	"os/exec"
)

// commandExists checks if a command is available through lookPath,
// falling back to the real PATH when lookPath is nil
func commandExists(lookPath func(string) (string, error), cmd string) bool {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(cmd)
	return err == nil
}

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
