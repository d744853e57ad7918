// ABOUTME: Collection orchestration and the adaptive growth policy
// ABOUTME: Runs mark then sweep and recomputes the trigger threshold

package vm

// Collect runs a full mark and sweep cycle, then recomputes the collection
// threshold from the surviving live count: double the live count, or back
// to the initial threshold when nothing survived (otherwise the threshold
// would collapse to zero and every allocation would collect). It returns
// the number of objects reclaimed and the number remaining.
//
// Collection cannot fail and allocates nothing; it is safe to call with an
// empty heap or an empty operand stack, in which case the latter reclaims
// the entire heap.
func (m *VM) Collect() (collected, remaining int) {
	m.markAll()
	collected = m.sweep()

	if m.numObjects == 0 {
		m.maxObjects = m.initialThreshold
	} else {
		m.maxObjects = 2 * m.numObjects
	}
	return collected, m.numObjects
}
