// Package trampoline runs recursively defined computations on an explicit,
// heap-allocated frame stack.
//
// A computation is written as a Program: a function from an argument to a
// Frame. A Frame is a suspended step of the computation. Each time it is
// resumed it either asks for a sub-problem (Call) or finishes (Done). Run
// pushes the asking frame, starts a fresh frame for the sub-problem and, once
// that frame finishes, resumes the asking frame with the sub-result.
//
// The native stack used by Run is constant no matter how deep the logical
// recursion goes; all depth lives in the frame stack. Frames hold no external
// resources, so an error returned by any frame simply abandons the stack and
// is handed back to the caller of Run unchanged.
//
// Single-argument programs are run with Recursive. Programs over two
// arguments use Recursive2, which packs the arguments in a Pair. The choice
// is made where the program is defined, never inside the loop.
package trampoline
