package engine

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const bytesPerMB = 1 << 20

// MemoryGuard reclaims memory at loop boundaries and enforces an optional heap budget.
type MemoryGuard struct {
	limit   uint64
	reclaim func()
	heap    func() uint64
}

// NewMemoryGuard returns a guard for limitMB megabytes; zero disables the budget.
func NewMemoryGuard(limitMB int) *MemoryGuard {
	var limit uint64
	if limitMB > 0 {
		limit = uint64(limitMB) * bytesPerMB
	}
	return &MemoryGuard{
		limit:   limit,
		reclaim: debug.FreeOSMemory,
		heap: func() uint64 {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			return ms.HeapAlloc
		},
	}
}

// ApplySoftLimit hands the budget to the runtime so the collector works harder near it.
func (g *MemoryGuard) ApplySoftLimit() {
	if g == nil || g.limit == 0 {
		return
	}
	debug.SetMemoryLimit(int64(g.limit))
}

// Reclaim forces a collection and returns freed memory to the OS.
func (g *MemoryGuard) Reclaim() {
	if g == nil || g.reclaim == nil {
		return
	}
	g.reclaim()
}

// Check reclaims and returns ErrResourceExhausted if the heap is still over budget.
func (g *MemoryGuard) Check() error {
	if g == nil {
		return nil
	}
	g.Reclaim()
	if g.limit == 0 {
		return nil
	}
	if used := g.heap(); used > g.limit {
		return fmt.Errorf("%w: heap %d MiB over %d MiB budget", ErrResourceExhausted, used/bytesPerMB, g.limit/bytesPerMB)
	}
	return nil
}
