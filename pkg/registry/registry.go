package registry

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed runtimes.toml
var defaultIndex string

// Entry describes one installable runtime
type Entry struct {
	Name        string              `toml:"-"`
	Title       string              `toml:"title"`
	Description string              `toml:"description"`
	DownloadURL string              `toml:"download_url"`
	PathOption  string              `toml:"path_option"`
	Packages    map[string][]string `toml:"packages"`
	Binaries    map[string][]string `toml:"binaries"`
}

// Registry maps runtime names to their entries
type Registry struct {
	entries map[string]*Entry
}

// Default returns the registry compiled into pyup
func Default() (*Registry, error) {
	return parse(defaultIndex, "embedded index")
}

// Load reads a registry from a TOML file, replacing the embedded one.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", path, err)
	}
	return parse(string(data), path)
}

func parse(data, source string) (*Registry, error) {
	var decoded map[string]Entry
	if _, err := toml.Decode(data, &decoded); err != nil {
		return nil, fmt.Errorf("registry: failed to parse %s: %w", source, err)
	}

	entries := make(map[string]*Entry, len(decoded))
	for name := range decoded {
		entry := decoded[name]
		entry.Name = name
		entries[name] = &entry
	}

	return &Registry{entries: entries}, nil
}

// Lookup returns the entry for a runtime name
func (r *Registry) Lookup(name string) (*Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: runtime '%s' not found", name)
	}
	return entry, nil
}

// Names lists the runtimes in the registry, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the packages to install for a package manager,
// e.g. Resolve("apt") -> ["python3", "python3-pip"]
func (e *Entry) Resolve(manager string) ([]string, error) {
	pkgs, ok := e.Packages[manager]
	if !ok || len(pkgs) == 0 {
		return nil, fmt.Errorf("registry: runtime '%s' has no packages for '%s'", e.Name, manager)
	}
	return pkgs, nil
}

// BinariesFor returns the runtime and package installer executables for an
// environment label.
func (e *Entry) BinariesFor(label string) (runtime, installer string, err error) {
	bins, ok := e.Binaries[label]
	if !ok || len(bins) != 2 {
		return "", "", fmt.Errorf("registry: runtime '%s' has no binaries for '%s'", e.Name, label)
	}
	return bins[0], bins[1], nil
}

// DisplayName returns the title, falling back to the entry name
func (e *Entry) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}
