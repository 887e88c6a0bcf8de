// Package worksheet models the external worksheet registry consumed by the
// operation pipeline. A worksheet pairs an optional byte-source path with
// its own sequence; worksheets are referenced by index from multi-worksheet
// composition and are read-only from the pipeline's point of view.
package worksheet

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/seqlang"
)

// Worksheet is a single registry entry.
type Worksheet struct {
	Name       string            `json:"name"`
	SourcePath string            `json:"file_path,omitempty"`
	Sequence   *seqlang.Sequence `json:"sequence,omitempty"`
}

// Registry exposes worksheets to the pipeline by index.
type Registry interface {
	Count() int
	Get(index int) (*Worksheet, bool)
}

// MemoryRegistry is a simple in-memory Registry, useful during tests or when
// the caller preloads a fixed set of worksheets.
type MemoryRegistry struct {
	mu     sync.RWMutex
	sheets []*Worksheet
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

// Add appends a worksheet and returns its index.
func (r *MemoryRegistry) Add(ws *Worksheet) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets = append(r.sheets, ws)
	return len(r.sheets) - 1
}

// Count implements the Registry interface.
func (r *MemoryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sheets)
}

// Get implements the Registry interface.
func (r *MemoryRegistry) Get(index int) (*Worksheet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.sheets) {
		return nil, false
	}
	return r.sheets[index], true
}

// registryFile is the on-disk JSON form of a registry.
type registryFile struct {
	Worksheets []*Worksheet `json:"worksheets"`
}

// SaveFile writes the registry to a JSON file.
func (r *MemoryRegistry) SaveFile(path string) error {
	r.mu.RLock()
	doc := registryFile{Worksheets: r.sheets}
	data, err := json.MarshalIndent(&doc, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("worksheet: marshal registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("worksheet: write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a registry from a JSON file.
func LoadFile(path string) (*MemoryRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worksheet: read %s: %w", path, err)
	}
	var doc registryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("worksheet: parse %s: %w", path, err)
	}
	return &MemoryRegistry{sheets: doc.Worksheets}, nil
}
