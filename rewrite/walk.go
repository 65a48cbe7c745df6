package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/treerex"
)

// DefaultThreadCutoff is the subtree node count above which a threaded
// walker forks child traversals into parallel tasks.
const DefaultThreadCutoff = 100

// walker drives a rewriter across every node of an expression tree.
type walker struct {
	inner    Rewriter
	post     bool // true ⇒ Postwalk order
	threaded bool
	cutoff   int
}

// Option configures a tree walker.
type Option func(*walker)

// Threaded enables or disables parallel traversal of large subtrees. The
// resulting expression is identical to the sequential walk.
func Threaded(on bool) Option {
	return func(w *walker) {
		w.threaded = on
	}
}

// ThreadCutoff sets the subtree node count a threaded walker requires
// before forking child traversals. It has no effect on a sequential walker.
func ThreadCutoff(n int) Option {
	return func(w *walker) {
		w.cutoff = n
	}
}

// Prewalk creates a rewriter applying rw at every node of an expression
// tree, visiting a node before its children. The children walked are those
// of the node's (possibly rewritten) replacement.
//
// The walk reports a match only if rw matched at every visited node; a
// single no-match anywhere makes the whole walk report no-match. Clients
// wanting OR-style behavior wrap rw in PassThrough before walking.
func Prewalk(rw Rewriter, opts ...Option) Rewriter {
	return newWalker(rw, false, opts)
}

// Postwalk creates a rewriter applying rw at every node of an expression
// tree, visiting children first; rw sees each interior node reconstructed
// from its rewritten children. The match contract is the same as Prewalk's.
func Postwalk(rw Rewriter, opts ...Option) Rewriter {
	return newWalker(rw, true, opts)
}

func newWalker(rw Rewriter, post bool, opts []Option) Rewriter {
	w := &walker{inner: rw, post: post, cutoff: DefaultThreadCutoff}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *walker) Rewrite(e treerex.Expr) (treerex.Expr, bool) {
	return w.walk(e)
}

func (w *walker) walk(e treerex.Expr) (treerex.Expr, bool) {
	if w.post {
		cur := e
		if !cur.IsLeaf() {
			args, ok := w.walkArgs(cur)
			if !ok {
				return nil, false
			}
			cur = cur.Construct(cur.Operation(), args)
		}
		return w.inner.Rewrite(cur)
	}
	cur, ok := w.inner.Rewrite(e)
	if !ok {
		return nil, false
	}
	if cur.IsLeaf() {
		return cur, true
	}
	args, ok := w.walkArgs(cur)
	if !ok {
		return nil, false
	}
	return cur.Construct(cur.Operation(), args), true
}

// walkArgs rewrites all children of an interior node, in parallel tasks if
// the walker is threaded and the subtree is large enough.
func (w *walker) walkArgs(e treerex.Expr) ([]treerex.Expr, bool) {
	args := e.Arguments()
	if w.threaded && treerex.NodeCount(e) > w.cutoff {
		return w.walkArgsParallel(args)
	}
	out := make([]treerex.Expr, len(args))
	for i, arg := range args {
		next, ok := w.walk(arg)
		if !ok {
			return nil, false
		}
		out[i] = next
	}
	return out, true
}

// walkArgsParallel forks one task per child and joins them, recombining the
// results in original argument order. Sibling tasks share nothing mutable;
// a panic inside a task is re-raised after the join, first one (in argument
// order) wins.
func (w *walker) walkArgsParallel(args []treerex.Expr) ([]treerex.Expr, bool) {
	out := make([]treerex.Expr, len(args))
	oks := make([]bool, len(args))
	panics := make([]interface{}, len(args))
	var wg sync.WaitGroup
	for i, arg := range args {
		wg.Add(1)
		go func(i int, arg treerex.Expr) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					panics[i] = p
				}
			}()
			out[i], oks[i] = w.walk(arg)
		}(i, arg)
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	for _, ok := range oks {
		if !ok {
			return nil, false
		}
	}
	tracer().Debugf("joined %d parallel subtree rewrites", len(args))
	return out, true
}
