// Package bfs provides tunable options and error definitions
// for breadth-first expansion over a metabolic network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNetworkNil is returned if a nil network is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrNoSeeds is returned when no seed metabolite is given.
	ErrNoSeeds = errors.New("bfs: no seed metabolites")

	// ErrSeedNotFound is returned when a seed ID is absent.
	ErrSeedNotFound = errors.New("bfs: seed metabolite not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Network is the read-only surface BFS walks. *core.Model implements it.
type Network interface {
	HasMetabolite(id string) bool
	Reaction(id string) (core.Reaction, bool)
	MetaboliteReactionTable() *core.Table
	ReactionMetaboliteTable() *core.Table
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a metabolite is first reached.
	OnEnqueue func(id string, depth int)

	// OnVisit is called when visiting a metabolite. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many reaction steps.
	MaxDepth int

	// FilterReaction can block a reaction by returning false.
	FilterReaction func(reaction string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit, every reaction allowed and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterReaction: func(string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after d reaction steps.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterReaction skips reactions for which fn returns false,
// e.g. reactions disabled by a gene knockout.
func WithFilterReaction(fn func(reaction string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterReaction = fn
		}
	}
}

// WithoutReactions blocks the listed reactions.
func WithoutReactions(ids ...string) Option {
	blocked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		blocked[id] = struct{}{}
	}

	return WithFilterReaction(func(r string) bool {
		_, skip := blocked[r]
		return !skip
	})
}

// BFSResult holds the outcome of an expansion:
//   - Order: metabolites visited, in visit sequence.
//   - Depth: reaction steps from the nearest seed.
//   - Parent: predecessor metabolite in the BFS tree.
//   - Via: reaction that first reached the metabolite.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]string
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the metabolites from a seed to dest and the reactions
// linking them (len(reactions) == len(metabolites)-1).
func (r *BFSResult) PathTo(dest string) (metabolites, reactions []string, err error) {
	if !r.Reached(dest) {
		return nil, nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	for cur := dest; ; {
		metabolites = append(metabolites, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		reactions = append(reactions, r.Via[cur])
		cur = prev
	}
	reverse(metabolites)
	reverse(reactions)

	return metabolites, reactions, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
