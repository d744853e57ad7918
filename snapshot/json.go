// ABOUTME: JSON snapshot codec
// ABOUTME: Writes live VM heaps and reads them back as analysis graphs

package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/abdullahmahfouz/Mark-Sweep/analysis"
	"github.com/abdullahmahfouz/Mark-Sweep/vm"
)

// JSON is the codec for the JSON snapshot format
type JSON struct{}

// jsonSnapshot is the on-disk snapshot layout
type jsonSnapshot struct {
	Objects []jsonObject     `json:"objects"`
	Roots   []analysis.ObjID `json:"roots"`
}

// jsonObject is one heap object in the JSON layout
type jsonObject struct {
	ID    analysis.ObjID   `json:"id"`
	Kind  string           `json:"kind"`
	Value int              `json:"value,omitempty"`
	Ptrs  []analysis.ObjID `json:"ptrs"`
}

// Dump writes the current heap of a VM to w in the JSON snapshot format
func Dump(w io.Writer, machine *vm.VM) error {
	return Write(w, analysis.FromVM(machine))
}

// Write encodes a graph to w in the JSON snapshot format. Objects are
// ordered by ID so output is deterministic.
func Write(w io.Writer, g analysis.Graph) error {
	snap := jsonSnapshot{
		Objects: []jsonObject{},
		Roots:   append([]analysis.ObjID{}, g.GetRoots().IDs...),
	}
	g.ForEachNode(func(n *analysis.Node) {
		obj := jsonObject{
			ID:   n.ID,
			Kind: n.Kind,
			Ptrs: append([]analysis.ObjID{}, n.Ptrs...),
		}
		if n.Kind == "int" {
			obj.Value = n.Value
		}
		snap.Objects = append(snap.Objects, obj)
	})
	sort.Slice(snap.Objects, func(i, j int) bool {
		return snap.Objects[i].ID < snap.Objects[j].ID
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// CanParse checks if the input looks like our JSON format. The preview may
// be truncated mid-document, so detection scans tokens instead of
// unmarshalling and accepts as soon as a top-level "objects" key appears.
func (c *JSON) CanParse(r io.Reader) bool {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return false
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			// Top-level object closed without an objects key.
			return false
		}
		key, ok := tok.(string)
		if !ok {
			return false
		}
		if key == "objects" {
			return true
		}
		if !skipValue(dec) {
			return false
		}
	}
}

// skipValue consumes the value following a key, descending into nested
// objects and arrays.
func skipValue(dec *json.Decoder) bool {
	tok, err := dec.Token()
	if err != nil {
		return false
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return true
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return true
}

// Parse reads a JSON snapshot and builds a graph
func (c *JSON) Parse(r io.Reader) (analysis.Graph, error) {
	var snap jsonSnapshot

	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	seen := make(map[analysis.ObjID]bool, len(snap.Objects))
	for i, obj := range snap.Objects {
		if obj.ID == 0 {
			return nil, fmt.Errorf("object at index %d missing id", i)
		}
		if seen[obj.ID] {
			return nil, fmt.Errorf("duplicate object id %d", obj.ID)
		}
		seen[obj.ID] = true
	}

	g := analysis.NewMemGraph()
	for _, obj := range snap.Objects {
		node := &analysis.Node{
			ID:    obj.ID,
			Kind:  obj.Kind,
			Value: obj.Value,
			Ptrs:  obj.Ptrs,
		}
		if node.Ptrs == nil {
			node.Ptrs = []analysis.ObjID{}
		}
		g.AddNode(node)
	}

	roots := analysis.Roots{IDs: snap.Roots}
	if roots.IDs == nil {
		roots.IDs = []analysis.ObjID{}
	}
	g.SetRoots(roots)

	return g, nil
}

// init registers the JSON codec
func init() {
	Register(&JSON{})
}
