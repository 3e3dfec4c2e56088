package g711

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid"
)

// ParallelThreshold - batches with this many elements or more are split
// between goroutines. Every element is independent, so the result is the same.
const ParallelThreshold = 1 << 16

var workers = maxWorkers()

// maxWorkers - logical cores, but no more than GOMAXPROCS (cgroup and affinity limits)
func maxWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if cores := cpuid.CPU.LogicalCores; cores > 0 && cores < n {
		return cores
	}
	return n
}

// parallel calls f over [0, n) split in contiguous chunks
func parallel(n int, f func(lo, hi int)) {
	if n < ParallelThreshold || workers < 2 {
		f(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			f(lo, hi)
			wg.Done()
		}(lo, hi)
	}
	wg.Wait()
}
