// Package bfs provides breadth-first expansion over a metabolic network,
// returning reaction-step distances, parent links, and visit order.
//
// What
//
//   - Start from one or more seed metabolites (depth 0).
//   - A metabolite reaches the products of every reaction that consumes it;
//     reversible reactions also carry products back to their substrates.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: metabolite → reaction steps from the nearest seed
//   - Parent / Via: predecessor metabolite and the reaction used
//   - Hooks: OnEnqueue (first reach) and OnVisit (may abort with an error).
//   - WithFilterReaction / WithoutReactions block reactions, e.g. those a
//     gene knockout disables.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Find which metabolites a medium can reach at all, and by which route.
//   - Spot metabolites disconnected from the exchange reactions before
//     handing a model to an optimizer.
//
// The expansion follows single substrates: a reaction fires as soon as any of
// its substrates is reached. It over-approximates network scope, where every
// substrate would be required.
//
// Determinism
//
//	Seeds are visited in the given order; neighbours follow the model's
//	edge insertion order, so the visit sequence is reproducible.
//
// Complexity (M = metabolites, R = reactions, E = stoichiometric edges)
//
//   - Time:   O(M + R + E)
//   - Memory: O(M + R + E) for the two table snapshots and the result maps
//
// Usage
//
//	res, err := bfs.BFS(model, []string{"glc_e"},
//	    bfs.WithMaxDepth(5),
//	    bfs.WithoutReactions(knockedOut...),
//	)
//	mets, rxns, err := res.PathTo("pyr_c")
//
// Errors
//
//   - ErrNetworkNil       if the network is nil.
//   - ErrNoSeeds          if seeds is empty.
//   - ErrSeedNotFound     if a seed is not a metabolite of the network.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs
