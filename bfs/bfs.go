// Package bfs expands a set of seed metabolites breadth-first through the
// reactions of a network, returning reaction-step distances, parent links
// and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
)

// queueItem pairs a metabolite ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     Network
	opts    BFSOptions
	ctx     context.Context
	byMet   *core.Table
	byRxn   *core.Table
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS expands seeds through net. A reaction is traversed from a metabolite
// on its substrate side to every metabolite on its product side; reversible
// reactions are traversed in both directions.
//
// Returns ErrNetworkNil, ErrNoSeeds or ErrSeedNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Complexity: O(M + E) after the O(M + R + E) table snapshots.
func BFS(net Network, seeds []string, opts ...Option) (*BFSResult, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range seeds {
		if !net.HasMetabolite(s) {
			return nil, fmt.Errorf("%w: %q", ErrSeedNotFound, s)
		}
	}

	byMet := net.MetaboliteReactionTable()
	n := byMet.Len()
	w := &walker{
		net:     net,
		opts:    o,
		ctx:     o.Ctx,
		byMet:   byMet,
		byRxn:   net.ReactionMetaboliteTable(),
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Via:    make(map[string]string, n),
		},
	}

	for _, s := range seeds {
		if !w.visited[s] {
			w.enqueue(s, 0, "", "")
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records how it was reached,
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent, via string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
		w.res.Via[id] = via
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen metabolite one reaction away from item.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.byMet.Row(item.id) {
		if !w.opts.FilterReaction(e.ID) {
			continue
		}
		r, ok := w.net.Reaction(e.ID)
		if !ok {
			continue
		}
		// Substrate side when consumed; product side only if reversible.
		forward := e.Coefficient < 0
		if e.Coefficient == 0 || (!forward && !r.Reversible) {
			continue
		}
		for _, p := range w.byRxn.Row(e.ID) {
			if w.visited[p.ID] || p.Coefficient == 0 || (p.Coefficient > 0) != forward {
				continue
			}
			w.enqueue(p.ID, next, item.id, e.ID)
		}
	}
}
