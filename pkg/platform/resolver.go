// pkg/platform/resolver.go
package platform

import (
	"fmt"
)

// Resolve picks the label to install for.
//
// Priority:
// 1. User-specified environment in config
// 2. Classified environment
func Resolve(env Environment, override string) (Label, error) {
	if override != "" {
		label, err := ParseLabel(override)
		if err != nil {
			return "", fmt.Errorf("resolving environment: %w", err)
		}
		return label, nil
	}

	return Classify(env), nil
}
