// Package core provides the in-memory metabolic network model used by every
// other fluxnet package.
//
// A Model is a bipartite graph G = (M ∪ R, S) where M are metabolites, R are
// reactions and S is a sparse set of weighted edges (metabolite, reaction) →
// stoichiometric coefficient. Negative coefficients mean consumption, positive
// coefficients mean production, and a missing edge means zero.
//
// One type, composable layers:
//
//   - NewModel(id)                      : stoichiometry only.
//   - NewModel(id, WithFluxBounds())    : adds one Bounds pair per reaction.
//   - NewModel(id, WithGeneRules())     : adds genes and GPR rules (implies bounds).
//
// The convenience constructors NewStoichiometricModel, NewConstraintBasedModel
// and NewGPRModel are shorthands for those three configurations. Capability
// queries (HasFluxBounds, HasGeneRules) let consumers such as package transform
// adapt to whatever layers a model carries.
//
// Ordering:
//
//	Every catalog (metabolites, reactions, compartments, genes, stoichiometry,
//	bounds, rules) iterates in insertion order. Replacing an entry keeps its
//	original position. The dense stoichiometric matrix and the textual form of a
//	model rely on this order.
//
// Lifecycle:
//
//	AddX               insert-or-replace by id.
//	RemoveMetabolite   drops incident edges.
//	RemoveReaction     drops incident edges, bounds and rules.
//	RemoveCompartment  optionally drops every metabolite inside it.
//
// Unresolved references (a metabolite in an unknown compartment, an edge with a
// missing endpoint, a bound for an unknown reaction) are skipped silently by
// default. WithStrictReferences turns those skips into ErrUnresolvedReference.
//
// Concurrency:
//
//	A Model has no internal locking. It is meant to be owned and mutated by a
//	single goroutine; use Clone to hand an independent copy to another one.
//
// Errors:
//
//	ErrEmptyID              - entity id is the empty string.
//	ErrReactionNotFound     - requested reaction does not exist.
//	ErrBoundsNotFound       - partial bound update without a prior bounds entry.
//	ErrNoFluxBounds         - bounds operation on a model without the bounds layer.
//	ErrNoGeneRules          - gene/rule operation on a model without the gene layer.
//	ErrInvalidRule          - rule text rejected by the gpr grammar.
//	ErrUnresolvedReference  - skipped reference, strict mode only.
package core
