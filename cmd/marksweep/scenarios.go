// ABOUTME: Scenario suite exercised by the demo harness
// ABOUTME: Mirrors the classic mark-and-sweep correctness checks

package main

import (
	"fmt"

	"github.com/abdullahmahfouz/Mark-Sweep/vm"
)

// scenario is one correctness check run against a fresh VM
type scenario struct {
	name string
	run  func(*vm.VM) error
}

var scenarios = []scenario{
	{"objects on stack survive", runObjectsOnStack},
	{"unreached objects collected", runUnreachedObjects},
	{"nested reachability", runNestedReachability},
	{"unrooted cycle reclaimed", runCycle},
	{"auto-trigger and heap growth", runHeapGrowth},
	{"allocation churn", runChurn},
	{"deep linked list survives", runDeepList},
	{"partial deletion", runPartialDelete},
	{"full clear", runFullClear},
	{"reallocation after reclaim", runReallocation},
	{"idempotent steady state", runIdempotent},
}

func expectLive(m *vm.VM, want int) error {
	if got := m.NumObjects(); got != want {
		return fmt.Errorf("live count %d, want %d", got, want)
	}
	return nil
}

func pushInts(m *vm.VM, values ...int) error {
	for _, v := range values {
		if _, err := m.PushInt(v); err != nil {
			return err
		}
	}
	return nil
}

func runObjectsOnStack(m *vm.VM) error {
	if err := pushInts(m, 1, 2); err != nil {
		return err
	}
	m.Collect()
	return expectLive(m, 2)
}

func runUnreachedObjects(m *vm.VM) error {
	if err := pushInts(m, 1, 2); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if _, err := m.Pop(); err != nil {
			return err
		}
	}
	m.Collect()
	return expectLive(m, 0)
}

func runNestedReachability(m *vm.VM) error {
	if err := pushInts(m, 1, 2); err != nil {
		return err
	}
	if _, err := m.PushPair(); err != nil {
		return err
	}
	m.Collect()
	return expectLive(m, 3)
}

func runCycle(m *vm.VM) error {
	if err := pushInts(m, 1, 2); err != nil {
		return err
	}
	a, err := m.PushPair()
	if err != nil {
		return err
	}
	if err := pushInts(m, 3, 4); err != nil {
		return err
	}
	b, err := m.PushPair()
	if err != nil {
		return err
	}

	a.Tail = b
	b.Tail = a

	for i := 0; i < 2; i++ {
		if _, err := m.Pop(); err != nil {
			return err
		}
	}
	collected, _ := m.Collect()
	if collected != 6 {
		return fmt.Errorf("collected %d objects, want 6", collected)
	}
	return expectLive(m, 0)
}

func runHeapGrowth(m *vm.VM) error {
	start := m.Threshold()
	for i := 0; i < start+2; i++ {
		if _, err := m.PushInt(i); err != nil {
			return err
		}
	}
	// The allocation after the threshold was hit collected nothing (all
	// rooted) and doubled the limit.
	if got := m.Threshold(); got != 2*start {
		return fmt.Errorf("threshold %d, want %d", got, 2*start)
	}
	return expectLive(m, start+2)
}

func runChurn(m *vm.VM) error {
	for i := 0; i < 1000; i++ {
		if _, err := m.PushInt(i); err != nil {
			return err
		}
		if _, err := m.Pop(); err != nil {
			return err
		}
	}
	m.Collect()
	return expectLive(m, 0)
}

func runDeepList(m *vm.VM) error {
	if _, err := m.PushInt(0); err != nil {
		return err
	}
	for i := 0; i < 20; i++ {
		if _, err := m.PushInt(i); err != nil {
			return err
		}
		if _, err := m.PushPair(); err != nil {
			return err
		}
	}
	m.Collect()
	return expectLive(m, 41)
}

func runPartialDelete(m *vm.VM) error {
	if err := pushInts(m, 10, 20); err != nil {
		return err
	}
	if _, err := m.Pop(); err != nil {
		return err
	}
	m.Collect()
	return expectLive(m, 1)
}

func runFullClear(m *vm.VM) error {
	if err := pushInts(m, 1, 2); err != nil {
		return err
	}
	if _, err := m.PushPair(); err != nil {
		return err
	}
	for m.StackLen() > 0 {
		if _, err := m.Pop(); err != nil {
			return err
		}
	}
	m.Collect()
	return expectLive(m, 0)
}

func runReallocation(m *vm.VM) error {
	if _, err := m.PushInt(1); err != nil {
		return err
	}
	if _, err := m.Pop(); err != nil {
		return err
	}
	m.Collect()
	if m.FirstObject() != nil {
		return fmt.Errorf("heap registry not empty after full reclaim")
	}

	if _, err := m.PushInt(2); err != nil {
		return err
	}
	if m.FirstObject() == nil {
		return fmt.Errorf("heap registry empty after reallocation")
	}
	return expectLive(m, 1)
}

func runIdempotent(m *vm.VM) error {
	if err := pushInts(m, 1, 2, 3); err != nil {
		return err
	}
	m.Collect()
	collected, remaining := m.Collect()
	if collected != 0 || remaining != 3 {
		return fmt.Errorf("second collect returned (%d, %d), want (0, 3)", collected, remaining)
	}
	return nil
}
