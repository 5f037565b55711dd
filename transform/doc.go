// Package transform implements structural rewrites of metabolic networks.
//
// MakeIrreversible replaces every reversible reaction r by two irreversible
// reactions r_f and r_b. The forward half keeps the original coefficients,
// the backward half carries them negated, so any flux v through r is the
// difference v_f - v_b of two non-negative fluxes. This is the form most LP
// and QP formulations expect.
//
// The transformation works against capability interfaces rather than a
// concrete model type:
//
//	Network          reactions, reaction→metabolite table, add/remove
//	BoundedNetwork   + flux bounds (queried through HasFluxBounds)
//	RuledNetwork     + GPR rules   (queried through HasGeneRules)
//
// *core.Model satisfies all three; the optional layers are honoured only
// when the model reports them as present.
//
// Usage:
//
//	m := core.NewConstraintBasedModel("ecoli")
//	// ... populate ...
//	mapping, err := transform.MakeIrreversible(ctx, m,
//		transform.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	for _, id := range mapping.Originals() {
//		s, _ := mapping.Split(id)
//		fmt.Println(id, "->", s.Forward, s.Backward)
//	}
package transform
