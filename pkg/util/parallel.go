package util

// ParallelRange partitions [0..n) into contiguous blocks, dispatching one
// block per worker goroutine.  Each invocation of job receives the worker
// index along with the half-open range [start..end) it owns exclusively.
// The first error reported by any worker (if any) is returned once all
// workers have completed.
func ParallelRange(n, workers uint, job func(worker, start, end uint) error) error {
	if n == 0 {
		return nil
	}
	//
	workers = clampWorkers(n, workers)
	// Construct a communication channel for errors.
	c := make(chan error, workers)
	//
	for w := uint(0); w < workers; w++ {
		start, end := blockRange(n, workers, w)
		// Dispatch!
		go func(worker, start, end uint) {
			c <- job(worker, start, end)
		}(w, start, end)
	}
	// Collect up all the results
	var err error
	//
	for w := uint(0); w < workers; w++ {
		if e := <-c; e != nil && err == nil {
			err = e
		}
	}
	//
	return err
}

// ParallelScan computes, in place, the inclusive prefix sum of xs under the
// given associative and commutative operation.  The scan proceeds in three
// phases: a parallel scan of each block; a sequential scan of the block
// totals; and a parallel application of block offsets.  Since the operation
// is associative and commutative, the result is identical to a sequential
// left fold regardless of how the reduction tree is shaped.
func ParallelScan[T any](xs []T, add func(T, T) T, workers uint) {
	n := uint(len(xs))
	//
	if n == 0 {
		return
	}
	//
	workers = clampWorkers(n, workers)
	//
	totals := make([]T, workers)
	// Phase 1: scan each block, recording its total.
	_ = ParallelRange(n, workers, func(worker, start, end uint) error {
		for i := start + 1; i < end; i++ {
			xs[i] = add(xs[i-1], xs[i])
		}
		//
		totals[worker] = xs[end-1]
		//
		return nil
	})
	// Phase 2: scan the block totals.
	for w := uint(1); w < workers; w++ {
		totals[w] = add(totals[w-1], totals[w])
	}
	// Phase 3: offset each block (bar the first) by the preceding total.
	_ = ParallelRange(n, workers, func(worker, start, end uint) error {
		if worker == 0 {
			return nil
		}
		//
		offset := totals[worker-1]
		//
		for i := start; i < end; i++ {
			xs[i] = add(offset, xs[i])
		}
		//
		return nil
	})
}

// blockRange determines the half-open range [start..end) owned by the given
// worker, such that all workers together cover [0..n) exactly.
func blockRange(n, workers, worker uint) (uint, uint) {
	var (
		size  = n / workers
		extra = n % workers
		start = worker*size + min(worker, extra)
		end   = start + size
	)
	// Distribute any remainder across the leading workers.
	if worker < extra {
		end++
	}
	//
	return start, end
}

func clampWorkers(n, workers uint) uint {
	if workers == 0 {
		return 1
	}
	//
	return min(workers, n)
}
