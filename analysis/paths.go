// ABOUTME: BFS algorithm for finding paths from objects to the root set
// ABOUTME: Answers why an object is still alive after a collection

package analysis

// Path is a reference chain from an object back to a root. IDs runs from
// the object itself to the root that retains it.
type Path struct {
	IDs []ObjID
}

// PathsToRoots finds up to maxPaths reference chains from an object to the
// root set using BFS over reverse edges. An unreachable object yields no
// paths; such an object would be reclaimed by the next collection.
func PathsToRoots(g Graph, from ObjID, maxPaths int) []Path {
	if maxPaths <= 0 {
		return nil
	}

	reverse := BuildReverseEdges(g)

	rootSet := make(map[ObjID]bool)
	for _, id := range g.GetRoots().IDs {
		rootSet[id] = true
	}

	// A root retains itself.
	if rootSet[from] {
		return []Path{{IDs: []ObjID{from}}}
	}

	type searchNode struct {
		id   ObjID
		path []ObjID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []ObjID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		for _, referrer := range reverse[node.id] {
			// A referrer already on the path would loop forever.
			inPath := false
			for _, id := range node.path {
				if id == referrer {
					inPath = true
					break
				}
			}
			if inPath {
				continue
			}

			next := make([]ObjID, len(node.path)+1)
			copy(next, node.path)
			next[len(node.path)] = referrer

			if rootSet[referrer] {
				result = append(result, Path{IDs: next})
				if len(result) >= maxPaths {
					break
				}
			} else {
				queue = append(queue, searchNode{id: referrer, path: next})
			}
		}
	}

	return result
}
