package harness

import (
	"fmt"
	"math"
	"sort"

	"github.com/roach88/conway/internal/game"
	"github.com/roach88/conway/internal/trampoline"
)

// EvalError reports an expression that cannot be turned into a game.
type EvalError struct {
	Message string
	Err     error // underlying error (optional)
}

func (e *EvalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Bounds on the families a scenario may build. int: n makes a chain of |n|
// positions and nim: n gives each side n options.
const (
	MaxInteger = 1 << 16
	MaxNimber  = 1 << 10
)

var builtins = map[string]func() *game.Game{
	"zero": game.Zero,
	"star": game.Star,
	"up":   game.Up,
}

func isBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// evaluator turns expression trees into games on the trampoline. Named
// definitions are evaluated once and cached.
type evaluator struct {
	arena     *game.Arena
	defs      map[string]any
	resolved  map[string]*game.Game
	resolving map[string]bool
	eval      func(node any) (*game.Game, error)
}

func newEvaluator(arena *game.Arena, defs map[string]any) *evaluator {
	e := &evaluator{
		arena:     arena,
		defs:      defs,
		resolved:  make(map[string]*game.Game),
		resolving: make(map[string]bool),
	}
	e.eval = trampoline.Recursive(trampoline.Program[any, *game.Game](e.frame))
	return e
}

// Eval evaluates the named game of a scenario.
func Eval(s *Scenario, arena *game.Arena, name string) (*game.Game, error) {
	if _, ok := s.Games[name]; !ok && !isBuiltin(name) {
		return nil, &EvalError{Message: fmt.Sprintf("unknown game %q", name)}
	}
	return newEvaluator(arena, s.Games).evalExpr(name)
}

// evalExpr evaluates one expression. A failure abandons the definitions
// that were being resolved, so their in-progress marks are cleared.
func (e *evaluator) evalExpr(node any) (*game.Game, error) {
	g, err := e.eval(node)
	if err != nil {
		clear(e.resolving)
		return nil, err
	}
	return g, nil
}

type frame = trampoline.Frame[any, *game.Game]

func fail(format string, args ...any) frame {
	return trampoline.Fail[any, *game.Game](&EvalError{Message: fmt.Sprintf(format, args...)})
}

func (e *evaluator) frame(node any) frame {
	switch v := node.(type) {
	case string:
		return e.refFrame(v)
	case map[string]any:
		if len(v) != 1 {
			return fail("expression must have exactly one operator, got %v", sortedKeys(v))
		}
		for op, arg := range v {
			return e.opFrame(op, arg)
		}
	case nil:
		return fail("missing expression")
	}
	return fail("unsupported expression %v (%T)", node, node)
}

func (e *evaluator) refFrame(name string) frame {
	if mk, ok := builtins[name]; ok {
		return trampoline.Return[any](mk())
	}
	if g, ok := e.resolved[name]; ok {
		return trampoline.Return[any](g)
	}
	def, ok := e.defs[name]
	if !ok {
		return fail("unknown game %q", name)
	}
	if e.resolving[name] {
		return fail("game %q is defined in terms of itself", name)
	}
	e.resolving[name] = true

	return trampoline.Gather([]any{def}, func(rs []*game.Game) (*game.Game, error) {
		delete(e.resolving, name)
		e.resolved[name] = rs[0]
		return rs[0], nil
	})
}

func (e *evaluator) opFrame(op string, arg any) frame {
	switch op {
	case "int":
		n, err := toInt(arg)
		if err != nil {
			return fail("int: %v", err)
		}
		if n > MaxInteger || n < -MaxInteger {
			return fail("int: %d is beyond the limit of %d", n, MaxInteger)
		}
		return trampoline.Return[any](game.Integer(n))

	case "nim":
		n, err := toInt(arg)
		if err != nil {
			return fail("nim: %v", err)
		}
		if n > MaxNimber {
			return fail("nim: %d is beyond the limit of %d", n, MaxNimber)
		}
		g, err := game.Nimber(n)
		if err != nil {
			return trampoline.Fail[any, *game.Game](&EvalError{Message: "nim", Err: err})
		}
		return trampoline.Return[any](g)

	case "neg":
		return trampoline.Gather([]any{arg}, func(rs []*game.Game) (*game.Game, error) {
			return e.arena.Neg(rs[0]), nil
		})

	case "add", "mul":
		args, ok := arg.([]any)
		if !ok || len(args) < 2 {
			return fail("%s: expected a list of at least two expressions", op)
		}
		combine := e.arena.Add
		if op == "mul" {
			combine = e.arena.Mul
		}
		return trampoline.Gather(args, func(rs []*game.Game) (*game.Game, error) {
			acc := rs[0]
			for _, g := range rs[1:] {
				acc = combine(acc, g)
			}
			return acc, nil
		})

	case "sub":
		args, ok := arg.([]any)
		if !ok || len(args) != 2 {
			return fail("sub: expected a list of exactly two expressions")
		}
		return trampoline.Gather(args, func(rs []*game.Game) (*game.Game, error) {
			return e.arena.Sub(rs[0], rs[1]), nil
		})

	case "game":
		return e.gameFrame(arg)
	}
	return fail("unknown operator %q", op)
}

func (e *evaluator) gameFrame(arg any) frame {
	fields, ok := arg.(map[string]any)
	if !ok {
		return fail("game: expected a mapping with left, right and name")
	}

	var left, right []any
	var name string
	for k, v := range fields {
		switch k {
		case "left", "right":
			if v == nil {
				continue
			}
			list, ok := v.([]any)
			if !ok {
				return fail("game: %s must be a list", k)
			}
			if k == "left" {
				left = list
			} else {
				right = list
			}
		case "name":
			s, ok := v.(string)
			if !ok {
				return fail("game: name must be a string")
			}
			name = s
		default:
			return fail("game: unknown field %q", k)
		}
	}

	args := make([]any, 0, len(left)+len(right))
	args = append(args, left...)
	args = append(args, right...)
	return trampoline.Gather(args, func(rs []*game.Game) (*game.Game, error) {
		g := e.arena.New(rs[:len(left)], rs[len(left):])
		if name != "" {
			g = g.Named(name)
		}
		return g, nil
	})
}

// toInt accepts the integer shapes produced by YAML and JSON decoding.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		// float64(math.MaxInt) rounds up to 2^63.
		if n < math.MinInt || n >= math.MaxInt {
			return 0, fmt.Errorf("%v is out of range", n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("expected an integer, got %v (%T)", v, v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
