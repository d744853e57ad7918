// ABOUTME: Builds reverse edges for graph traversal
// ABOUTME: Maps nodes to their referrers for paths-to-roots

package analysis

// ReverseEdges maps each node to the nodes that point to it
type ReverseEdges map[ObjID][]ObjID

// BuildReverseEdges creates a map of reverse edges
func BuildReverseEdges(g Graph) ReverseEdges {
	reverse := make(ReverseEdges)

	g.ForEachNode(func(n *Node) {
		for _, target := range n.Ptrs {
			reverse[target] = append(reverse[target], n.ID)
		}
	})

	return reverse
}
