// ABOUTME: Registry for heap snapshot formats
// ABOUTME: Selects the right codec for a snapshot by content detection

package snapshot

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/abdullahmahfouz/Mark-Sweep/analysis"
)

// ErrNoFormat is returned when no registered codec recognizes the data
var ErrNoFormat = errors.New("no format found for snapshot data")

// detectSize is how many bytes codecs get to look at for format detection
const detectSize = 4096

// formatRegistry holds registered codecs
type formatRegistry struct {
	mu      sync.RWMutex
	formats []Format
}

// Global registry instance
var registry = &formatRegistry{}

// Register adds a codec to the registry
func Register(f Format) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.formats = append(registry.formats, f)
}

// Open reads a heap snapshot and returns a graph, trying each registered
// codec against a buffered preview of the data.
func Open(r io.Reader) (analysis.Graph, error) {
	preview := make([]byte, detectSize)
	n, err := io.ReadFull(r, preview)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	preview = preview[:n]

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, f := range registry.formats {
		if f.CanParse(bytes.NewReader(preview)) {
			full := io.MultiReader(bytes.NewReader(preview), r)
			return f.Parse(full)
		}
	}

	return nil, ErrNoFormat
}
