// SPDX-License-Identifier: MIT

// Package core defines the entity records, sentinel errors, and the Model
// constructor with its functional options.
package core

import "errors"

// Sentinel errors for model operations.
var (
	// ErrEmptyID indicates that an entity was supplied with an empty ID.
	ErrEmptyID = errors.New("core: entity ID is empty")

	// ErrReactionNotFound indicates an operation referenced a non-existent reaction.
	ErrReactionNotFound = errors.New("core: reaction not found")

	// ErrBoundsNotFound indicates a partial bound update on a reaction that has no bounds entry.
	ErrBoundsNotFound = errors.New("core: bounds not found")

	// ErrNoFluxBounds indicates a bounds operation on a model built without WithFluxBounds.
	ErrNoFluxBounds = errors.New("core: model has no flux bounds layer")

	// ErrNoGeneRules indicates a gene or rule operation on a model built without WithGeneRules.
	ErrNoGeneRules = errors.New("core: model has no gene rules layer")

	// ErrInvalidRule indicates that a GPR rule could not be compiled.
	ErrInvalidRule = errors.New("core: invalid GPR rule")

	// ErrUnresolvedReference indicates a reference to a missing entity (strict mode only).
	ErrUnresolvedReference = errors.New("core: unresolved reference")
)

// Metabolite is a chemical species, optionally located in a compartment.
// An empty Compartment means the metabolite is not assigned to any.
type Metabolite struct {
	ID          string
	Name        string
	Compartment string
}

// Reaction is a transformation between metabolites. The participating
// metabolites and their coefficients live in the model's stoichiometry.
type Reaction struct {
	ID         string
	Name       string
	Reversible bool
}

// NewReaction returns a reversible Reaction, which is the default direction
// for freshly declared reactions.
func NewReaction(id, name string) Reaction {
	return Reaction{ID: id, Name: name, Reversible: true}
}

// Gene is a gene referenced by GPR rules.
type Gene struct {
	ID   string
	Name string
}

// Compartment is a cellular location (cytosol, periplasm, ...).
type Compartment struct {
	ID   string
	Name string
}

// Edge is a weighted stoichiometric edge between a metabolite and a reaction.
type Edge struct {
	Metabolite  string
	Reaction    string
	Coefficient float64
}

// edgeKey indexes the sparse stoichiometry map.
type edgeKey struct {
	metabolite string
	reaction   string
}

// ModelOption configures a Model before creation.
type ModelOption func(m *Model)

// WithFluxBounds enables the flux-bounds layer: every reaction carries a
// lower/upper Bounds pair.
func WithFluxBounds() ModelOption {
	return func(m *Model) {
		if m.bounds == nil {
			m.bounds = newCatalog[string, Bounds]()
		}
	}
}

// WithGeneRules enables the gene layer (genes plus one GPR rule per reaction).
// The gene layer sits on top of flux bounds, so this option implies WithFluxBounds.
func WithGeneRules() ModelOption {
	return func(m *Model) {
		WithFluxBounds()(m)
		if m.genes == nil {
			m.genes = &geneLayer{
				genes: newCatalog[string, Gene](),
				rules: newCatalog[string, rule](),
			}
		}
	}
}

// WithStrictReferences makes unresolved references fail with
// ErrUnresolvedReference instead of being skipped silently.
func WithStrictReferences() ModelOption {
	return func(m *Model) { m.strict = true }
}

// Model is the metabolic network container.
//
// metabolites, reactions, compartments and stoichiometry form the bipartite
// graph; bounds and genes are optional layers (nil when disabled).
type Model struct {
	id     string
	strict bool // unresolved references → error instead of skip

	metabolites   *catalog[string, Metabolite]
	reactions     *catalog[string, Reaction]
	compartments  *catalog[string, Compartment]
	stoichiometry *catalog[edgeKey, float64]

	bounds *catalog[string, Bounds] // reaction ID → bounds; nil without WithFluxBounds
	genes  *geneLayer               // nil without WithGeneRules
}

// NewModel creates an empty Model with the given id and options.
// By default the model only carries stoichiometry.
// Complexity: O(1)
func NewModel(id string, opts ...ModelOption) *Model {
	m := &Model{
		id:            id,
		metabolites:   newCatalog[string, Metabolite](),
		reactions:     newCatalog[string, Reaction](),
		compartments:  newCatalog[string, Compartment](),
		stoichiometry: newCatalog[edgeKey, float64](),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewStoichiometricModel creates a model without bounds or gene layers.
func NewStoichiometricModel(id string, opts ...ModelOption) *Model {
	return NewModel(id, opts...)
}

// NewConstraintBasedModel creates a model with the flux-bounds layer.
func NewConstraintBasedModel(id string, opts ...ModelOption) *Model {
	return NewModel(id, append([]ModelOption{WithFluxBounds()}, opts...)...)
}

// NewGPRModel creates a model with flux bounds, genes and GPR rules.
func NewGPRModel(id string, opts ...ModelOption) *Model {
	return NewModel(id, append([]ModelOption{WithGeneRules()}, opts...)...)
}

// ID returns the model identifier.
func (m *Model) ID() string { return m.id }

// HasFluxBounds reports whether the model carries the flux-bounds layer.
func (m *Model) HasFluxBounds() bool { return m.bounds != nil }

// HasGeneRules reports whether the model carries the gene layer.
func (m *Model) HasGeneRules() bool { return m.genes != nil }

// Strict reports whether unresolved references are reported as errors.
func (m *Model) Strict() bool { return m.strict }
