// Package matrix offers dense linear-algebra primitives for metabolic networks.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Eager kernels (Add, Sub, Scale, Transpose, Mul, MatVec, Rank) with
//     *Dense fast paths and deterministic loop orders.
//   - Stoichiometric, an adapter turning a network into a labelled
//     metabolite × reaction matrix S, used for steady-state residuals S·v
//     and degree-of-freedom analysis.
//
// Dense storage costs O(M*R) memory, which is acceptable for genome-scale
// models (a few thousand metabolites and reactions). Models without
// metabolites or reactions yield legal 0×R or M×0 matrices.
package matrix
