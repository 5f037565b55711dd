// Package fluxnet is an in-memory toolkit for building, transforming and
// inspecting metabolic network models: metabolites, reactions, compartments,
// their stoichiometry, flux bounds and gene-protein-reaction (GPR) rules.
//
// What is inside?
//
//	A small, deterministic library where every view follows insertion order:
//		• core:      the Model with optional flux-bound and gene-rule layers
//		• gpr:       parser and evaluator for boolean GPR rules
//		• transform: split reversible reactions into irreversible pairs
//		• matrix:    dense stoichiometric matrix, S·v, rank and degrees of freedom
//		• solver:    the contract an LP/QP backend implements, plus problem snapshots
//		• bfs:       breadth-first reachability through the reaction network
//		• loader:    YAML and HCL model documents
//		• cmd/fluxnet: command line front end over all of the above
//
// Model kinds
//
//	A stoichiometric model carries only the network. A constraint-based model
//	adds a lower/upper flux bound per reaction. A GPR-constrained model adds
//	genes and a rule per reaction on top of that:
//
//	    m := core.NewGPRModel("ecoli_core")
//	    _ = m.AddReaction(core.NewReaction("PGI", "glucose-6-phosphate isomerase"),
//	        core.WithBounds(core.Finite(-1000), core.Finite(1000)),
//	        core.WithRule("b4025"))
//
// Quick ASCII example:
//
//	    glc_e ──T──▶ glc ◀─R1─▶ g6p ──R2──▶ 2 pyr
//
//	represents a transport, a reversible isomerase and an irreversible
//	cleavage; `fluxnet irreversible` turns R1 into R1_f and R1_b.
//
//	go get github.com/katalvlaran/fluxnet
package fluxnet
