// SPDX-License-Identifier: MIT

// Package loader reads and writes fluxnet models as YAML or HCL documents.
package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading.
var (
	// ErrUnknownKind indicates a document kind outside the supported set.
	ErrUnknownKind = errors.New("loader: unknown model kind")

	// ErrUnsupportedFormat indicates a file extension no codec handles.
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")

	// ErrInvalidDocument indicates a structurally invalid document.
	ErrInvalidDocument = errors.New("loader: invalid document")
)

// Kind selects the layers of the built model.
type Kind string

// Supported kinds.
const (
	KindStoichiometric  Kind = "stoichiometric"
	KindConstraintBased Kind = "constraint-based"
	KindGPR             Kind = "gpr"
)

// Document is the format-neutral form of a model. Slice order is insertion
// order in the built model.
type Document struct {
	ID           string           `yaml:"id"`
	Kind         Kind             `yaml:"kind,omitempty"`
	Compartments []CompartmentDoc `yaml:"compartments,omitempty"`
	Metabolites  []MetaboliteDoc  `yaml:"metabolites,omitempty"`
	Genes        []GeneDoc        `yaml:"genes,omitempty"`
	Reactions    []ReactionDoc    `yaml:"reactions,omitempty"`
}

// CompartmentDoc describes a compartment.
type CompartmentDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// MetaboliteDoc describes a metabolite.
type MetaboliteDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Compartment string `yaml:"compartment,omitempty"`
}

// GeneDoc describes a gene.
type GeneDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// ReactionDoc describes a reaction with its layered data. A nil Reversible
// means reversible; nil bounds mean unbounded.
type ReactionDoc struct {
	ID            string       `yaml:"id"`
	Name          string       `yaml:"name,omitempty"`
	Reversible    *bool        `yaml:"reversible,omitempty"`
	LowerBound    *float64     `yaml:"lower_bound,omitempty"`
	UpperBound    *float64     `yaml:"upper_bound,omitempty"`
	Rule          string       `yaml:"rule,omitempty"`
	Stoichiometry Coefficients `yaml:"stoichiometry,omitempty"`
}

// IsReversible resolves the nil default.
func (r ReactionDoc) IsReversible() bool {
	return r.Reversible == nil || *r.Reversible
}

// Coefficient is one (metabolite, coefficient) term of a reaction.
type Coefficient struct {
	Metabolite string
	Value      float64
}

// Coefficients keeps stoichiometry terms in document order.
type Coefficients []Coefficient

// ResolveKind returns Kind, or infers one when empty: any gene or rule selects
// KindGPR, any bound KindConstraintBased, otherwise KindStoichiometric.
func (d *Document) ResolveKind() (Kind, error) {
	switch d.Kind {
	case KindStoichiometric, KindConstraintBased, KindGPR:
		return d.Kind, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}

	kind := KindStoichiometric
	if len(d.Genes) > 0 {
		return KindGPR, nil
	}
	for _, r := range d.Reactions {
		if r.Rule != "" {
			return KindGPR, nil
		}
		if r.LowerBound != nil || r.UpperBound != nil {
			kind = KindConstraintBased
		}
	}

	return kind, nil
}

// Validate checks ids and the kind. Reference resolution is left to the model.
func (d *Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing model id", ErrInvalidDocument)
	}
	if _, err := d.ResolveKind(); err != nil {
		return err
	}
	for i, r := range d.Reactions {
		if r.ID == "" {
			return fmt.Errorf("%w: reaction #%d has no id", ErrInvalidDocument, i)
		}
		for _, c := range r.Stoichiometry {
			if c.Metabolite == "" {
				return fmt.Errorf("%w: reaction %q has a term without metabolite", ErrInvalidDocument, r.ID)
			}
		}
	}

	return nil
}
