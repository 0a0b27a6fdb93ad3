package trampoline

// Return is a frame that finishes immediately with r. It serves base cases
// and memo hits.
func Return[A, R any](r R) Frame[A, R] {
	return FrameFunc[A, R](func(R) (Step[A, R], error) {
		return Done[A](r), nil
	})
}

// Fail is a frame that fails immediately with err.
func Fail[A, R any](err error) Frame[A, R] {
	return FrameFunc[A, R](func(R) (Step[A, R], error) {
		var zero Step[A, R]
		return zero, err
	})
}

// Gather requests every argument in args, in order, and hands the collected
// results to finish. With no args, finish runs on the first resume.
func Gather[A, R any](args []A, finish func(results []R) (R, error)) Frame[A, R] {
	results := make([]R, 0, len(args))
	next := 0
	return FrameFunc[A, R](func(sub R) (Step[A, R], error) {
		if next > 0 {
			results = append(results, sub)
		}
		if next < len(args) {
			next++
			return Call[A, R](args[next-1]), nil
		}
		r, err := finish(results)
		if err != nil {
			var zero Step[A, R]
			return zero, err
		}
		return Done[A](r), nil
	})
}

// Until requests the arguments in args one at a time and stops at the first
// sub-result for which stop reports true. It finishes with hit in that case
// and with miss when every argument was evaluated without stopping.
//
// args is consulted lazily: it is called with the index of the next argument
// and reports false when there are no more.
func Until[A, R any](args func(i int) (A, bool), stop func(R) bool, hit, miss R) Frame[A, R] {
	next := 0
	return FrameFunc[A, R](func(sub R) (Step[A, R], error) {
		if next > 0 && stop(sub) {
			return Done[A](hit), nil
		}
		arg, ok := args(next)
		if !ok {
			return Done[A](miss), nil
		}
		next++
		return Call[A, R](arg), nil
	})
}

// OnDone wraps f so that done sees its final result before the enclosing
// frame does. Memo tables use it to record results.
func OnDone[A, R any](f Frame[A, R], done func(R)) Frame[A, R] {
	return FrameFunc[A, R](func(sub R) (Step[A, R], error) {
		step, err := f.Resume(sub)
		if err == nil && step.Done {
			done(step.Result)
		}
		return step, err
	})
}
