// ABOUTME: Format interface for heap snapshot codecs
// ABOUTME: Defines the contract for pluggable snapshot readers

package snapshot

import (
	"io"

	"github.com/abdullahmahfouz/Mark-Sweep/analysis"
)

// Format is the interface for snapshot codecs
type Format interface {
	// CanParse checks if this codec can handle the given snapshot data.
	// The reader is a preview; implementations should read a small amount
	// to detect the format and not consume the entire stream.
	CanParse(r io.Reader) bool

	// Parse reads the snapshot and builds a graph. The reader is
	// positioned at the start of the data.
	Parse(r io.Reader) (analysis.Graph, error)
}
