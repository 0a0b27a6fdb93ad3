package trampoline

// Step is what a Frame reports when resumed: a request to evaluate the
// program on Arg, or the frame's final Result.
type Step[A, R any] struct {
	Arg    A
	Result R
	Done   bool
}

// Call suspends the current frame until the program has been evaluated on arg.
func Call[A, R any](arg A) Step[A, R] {
	return Step[A, R]{Arg: arg}
}

// Done finishes the current frame with result.
func Done[A, R any](result R) Step[A, R] {
	return Step[A, R]{Result: result, Done: true}
}

// Frame is a suspended computation.
//
// The first Resume receives the zero R. Every later Resume receives the
// result of the sub-problem requested by the previous Step.
type Frame[A, R any] interface {
	Resume(sub R) (Step[A, R], error)
}

// FrameFunc adapts a closure to a Frame. State lives in the closure.
type FrameFunc[A, R any] func(sub R) (Step[A, R], error)

// Resume implements Frame.
func (f FrameFunc[A, R]) Resume(sub R) (Step[A, R], error) {
	return f(sub)
}

// Program builds the first frame of a computation for arg.
type Program[A, R any] func(arg A) Frame[A, R]

// Stats describes one evaluation.
type Stats struct {
	// Frames is the number of frames started, including the root.
	Frames int
	// MaxDepth is the largest number of frames alive at once.
	MaxDepth int
}

// Run evaluates p on arg.
func Run[A, R any](p Program[A, R], arg A) (R, error) {
	r, _, err := RunWithStats(p, arg)
	return r, err
}

// RunWithStats is Run that also reports frame counts.
func RunWithStats[A, R any](p Program[A, R], arg A) (R, Stats, error) {
	var (
		stack []Frame[A, R]
		sub   R
		zero  R
	)
	stats := Stats{Frames: 1, MaxDepth: 1}
	cur := p(arg)

	for {
		step, err := cur.Resume(sub)
		if err != nil {
			return zero, stats, err
		}

		if step.Done {
			if len(stack) == 0 {
				return step.Result, stats, nil
			}
			cur = stack[len(stack)-1]
			stack[len(stack)-1] = nil // release the popped frame
			stack = stack[:len(stack)-1]
			sub = step.Result
			continue
		}

		stack = append(stack, cur)
		cur = p(step.Arg)
		sub = zero

		stats.Frames++
		if depth := len(stack) + 1; depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
	}
}

// Recursive turns a single-argument program into a plain function.
func Recursive[A, R any](p Program[A, R]) func(A) (R, error) {
	return func(arg A) (R, error) {
		return Run(p, arg)
	}
}

// Pair carries the two arguments of a Recursive2 program.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Call2 suspends the current frame of a two-argument program.
func Call2[A, B, R any](a A, b B) Step[Pair[A, B], R] {
	return Call[Pair[A, B], R](Pair[A, B]{First: a, Second: b})
}

// Recursive2 turns a two-argument program into a plain function.
func Recursive2[A, B, R any](p func(a A, b B) Frame[Pair[A, B], R]) func(A, B) (R, error) {
	prog := Program[Pair[A, B], R](func(arg Pair[A, B]) Frame[Pair[A, B], R] {
		return p(arg.First, arg.Second)
	})
	return func(a A, b B) (R, error) {
		return Run(prog, Pair[A, B]{First: a, Second: b})
	}
}
