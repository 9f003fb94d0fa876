package assets

import (
	"encoding/json"
	"os"
	"sync"
)

// ManifestFile is the name Build's manifest is saved under.
const ManifestFile = "manifest.json"

// Manifest maps asset names to fingerprinted names.
// It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// LoadManifest reads a manifest written by Save.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Save writes the manifest as indented JSON.
func (m *Manifest) Save(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Resolve returns the fingerprinted name for name, or name itself when
// the manifest has no entry.
func (m *Manifest) Resolve(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if resolved, ok := m.entries[name]; ok {
		return resolved
	}
	return name
}

// Has reports whether the manifest contains name.
func (m *Manifest) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[name]
	return ok
}

// Set adds or replaces an entry.
func (m *Manifest) Set(name, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[name] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// All returns a copy of the entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}
