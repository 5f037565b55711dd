// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Adapt a metabolic network into a labelled metabolite × reaction Dense
//     matrix, S[i][j] = coefficient of metabolite i in reaction j, 0 if absent.
//   - Row order follows the network's metabolite order, column order its
//     reaction order, so the output is deterministic.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
)

// Source is the read-only network surface the adapter needs.
// *core.Model implements it.
type Source interface {
	MetaboliteIDs() []string
	ReactionIDs() []string
	Edges() []core.Edge
}

// StoichiometricMatrix is a Dense matrix labelled with metabolite (row) and
// reaction (column) ids.
type StoichiometricMatrix struct {
	*Dense
	Metabolites []string
	Reactions   []string

	metIndex map[string]int
	rxnIndex map[string]int
}

// Stoichiometric builds the labelled stoichiometric matrix of src.
//
// Implementation:
//   - Stage 1: Snapshot ids and build both index maps.
//   - Stage 2: Allocate M×R (zero sizes allowed) and write each edge.
//
// Errors:
//   - ErrNilSource, ErrNaNInf (a non-finite coefficient).
//
// Complexity: O(M*R + E).
func Stoichiometric(src Source) (*StoichiometricMatrix, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	mets, rxns := src.MetaboliteIDs(), src.ReactionIDs()
	s := &StoichiometricMatrix{
		Metabolites: mets,
		Reactions:   rxns,
		metIndex:    positions(mets),
		rxnIndex:    positions(rxns),
	}
	d, err := newDenseZeroOK(len(mets), len(rxns))
	if err != nil {
		return nil, err
	}
	s.Dense = d

	for _, e := range src.Edges() {
		i, okM := s.metIndex[e.Metabolite]
		j, okR := s.rxnIndex[e.Reaction]
		if !okM || !okR {
			continue
		}
		if err = d.Set(i, j, e.Coefficient); err != nil {
			return nil, fmt.Errorf("Stoichiometric(%s,%s): %w", e.Metabolite, e.Reaction, err)
		}
	}

	return s, nil
}

func positions(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

// MetaboliteIndex returns the row of a metabolite.
func (s *StoichiometricMatrix) MetaboliteIndex(id string) (int, bool) {
	i, ok := s.metIndex[id]
	return i, ok
}

// ReactionIndex returns the column of a reaction.
func (s *StoichiometricMatrix) ReactionIndex(id string) (int, bool) {
	j, ok := s.rxnIndex[id]
	return j, ok
}

// Coefficient returns S[metabolite][reaction].
//
// Errors: ErrUnknownID.
func (s *StoichiometricMatrix) Coefficient(metabolite, reaction string) (float64, error) {
	i, ok := s.metIndex[metabolite]
	if !ok {
		return 0, fmt.Errorf("metabolite %q: %w", metabolite, ErrUnknownID)
	}
	j, ok := s.rxnIndex[reaction]
	if !ok {
		return 0, fmt.Errorf("reaction %q: %w", reaction, ErrUnknownID)
	}

	return s.data[i*s.c+j], nil
}

// ReactionColumn returns a copy of the column of a reaction.
//
// Errors: ErrUnknownID.
func (s *StoichiometricMatrix) ReactionColumn(id string) ([]float64, error) {
	j, ok := s.rxnIndex[id]
	if !ok {
		return nil, fmt.Errorf("reaction %q: %w", id, ErrUnknownID)
	}

	return s.Col(j)
}

// FluxVector lays out per-reaction values in column order; reactions missing
// from values get 0, unknown keys are ignored.
func (s *StoichiometricMatrix) FluxVector(values map[string]float64) []float64 {
	v := make([]float64, len(s.Reactions))
	for id, x := range values {
		if j, ok := s.rxnIndex[id]; ok {
			v[j] = x
		}
	}

	return v
}

// DegreesOfFreedom returns R - rank(S): the dimension of the steady-state
// flux space S·v = 0 before bounds are applied.
func (s *StoichiometricMatrix) DegreesOfFreedom() (int, error) {
	r, err := Rank(s.Dense, 0)
	if err != nil {
		return 0, err
	}

	return s.c - r, nil
}
