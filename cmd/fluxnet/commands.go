package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fluxnet/bfs"
	"github.com/katalvlaran/fluxnet/core"
	"github.com/katalvlaran/fluxnet/loader"
	"github.com/katalvlaran/fluxnet/matrix"
	"github.com/katalvlaran/fluxnet/solver"
	"github.com/katalvlaran/fluxnet/transform"
)

// errInfeasible makes `check` exit non-zero when violations are found.
var errInfeasible = errors.New("flux distribution is not feasible")

func (a *app) showCmd() *cobra.Command {
	var names bool
	cmd := &cobra.Command{
		Use:   "show <model>",
		Short: "Print every reaction as an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			var opts []core.FormatOption
			if names {
				opts = append(opts, core.WithReactionNames(), core.WithMetaboliteNames())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.ToString(opts...))
			return err
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "print names instead of ids")

	return cmd
}

func (a *app) matrixCmd() *cobra.Command {
	var dof bool
	cmd := &cobra.Command{
		Use:   "matrix <model>",
		Short: "Print the labelled stoichiometric matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			s, err := matrix.Stoichiometric(m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeLabelled(out, s)
			if dof {
				n, err := s.DegreesOfFreedom()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "degrees of freedom: %d\n", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dof, "dof", false, "also print the dimension of the steady-state flux space")

	return cmd
}

// writeLabelled prints a header of reaction ids then one row per metabolite.
func writeLabelled(w io.Writer, s *matrix.StoichiometricMatrix) {
	fmt.Fprintf(w, "\t%s\n", strings.Join(s.Reactions, "\t"))
	for i, id := range s.Metabolites {
		row, _ := s.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintf(w, "%s\t%s\n", id, strings.Join(cells, "\t"))
	}
}

func (a *app) irreversibleCmd() *cobra.Command {
	var output, fwd, bwd string
	cmd := &cobra.Command{
		Use:   "irreversible <model>",
		Short: "Split every reversible reaction into a forward and a backward half",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			mapping, err := transform.MakeIrreversible(cmd.Context(), m,
				transform.WithSuffixes(fwd, bwd),
				transform.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("reactions split", "count", mapping.Len())

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
				return err
			}
			if err = loader.Save(output, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "split %d reactions, wrote %s\n", mapping.Len(), output)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "write the result to this .yaml/.yml/.hcl file instead of stdout")
	f.StringVar(&fwd, "forward-suffix", transform.DefaultForwardSuffix, "suffix of forward halves")
	f.StringVar(&bwd, "backward-suffix", transform.DefaultBackwardSuffix, "suffix of backward halves")

	return cmd
}

func (a *app) gprCmd() *cobra.Command {
	var active []string
	cmd := &cobra.Command{
		Use:   "gpr <model>",
		Short: "List reactions whose rule holds for the given active genes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			on, err := m.EvalGPR(active)
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), on)
		},
	}
	cmd.Flags().StringSliceVar(&active, "active", nil, "active genes (comma separated or repeated)")

	return cmd
}

func (a *app) knockoutCmd() *cobra.Command {
	var genes []string
	cmd := &cobra.Command{
		Use:   "knockout <model>",
		Short: "List reactions disabled by deleting the given genes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			off, err := m.KnockoutReactions(genes...)
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), off)
		},
	}
	cmd.Flags().StringSliceVar(&genes, "genes", nil, "deleted genes (comma separated or repeated)")

	return cmd
}

func (a *app) biomassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "biomass <model>",
		Short: "Print the reaction detected as biomass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			id, ok := m.DetectBiomassReaction()
			if !ok {
				return fmt.Errorf("no biomass reaction in model %q", m.ID())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

func (a *app) reachCmd() *cobra.Command {
	var (
		seeds    []string
		knockout []string
		depth    int
	)
	cmd := &cobra.Command{
		Use:   "reach <model>",
		Short: "List metabolites reachable from seed metabolites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(depth)}
			if len(knockout) > 0 {
				off, err := m.KnockoutReactions(knockout...)
				if err != nil {
					return err
				}
				a.logger.Debug("reactions knocked out", "reactions", off)
				opts = append(opts, bfs.WithoutReactions(off...))
			}
			res, err := bfs.BFS(m, seeds, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range res.Order {
				fmt.Fprintf(out, "%d\t%s\t%s\n", res.Depth[id], id, res.Via[id])
			}
			a.logger.Info("expansion done", "reached", len(res.Order), "metabolites", m.MetaboliteCount())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&seeds, "from", nil, "seed metabolites (comma separated or repeated)")
	f.StringSliceVar(&knockout, "knockout", nil, "genes to delete before expanding")
	f.IntVar(&depth, "max-depth", 0, "maximum reaction steps (0 means unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var (
		fluxes map[string]string
		tol    float64
	)
	cmd := &cobra.Command{
		Use:   "check <model>",
		Short: "Check a flux distribution against bounds and steady state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			values, err := parseFluxes(fluxes)
			if err != nil {
				return err
			}
			p, err := solver.NewProblem(m, nil)
			if err != nil {
				return err
			}
			violations, err := p.Check(values, tol)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintln(out, "feasible")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintf(out, "%s\t%s\t%g\n", v.Kind, v.ID, v.Value)
			}
			return fmt.Errorf("%w: %d violations", errInfeasible, len(violations))
		},
	}
	f := cmd.Flags()
	f.StringToStringVar(&fluxes, "flux", nil, "reaction fluxes as id=value pairs; unlisted reactions carry zero flux")
	f.Float64Var(&tol, "tol", 1e-9, "absolute tolerance")

	return cmd
}

// parseFluxes converts id=value flag pairs to numbers.
func parseFluxes(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for id, text := range raw {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("flux of %q: %w", id, err)
		}
		out[id] = v
	}

	return out, nil
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a model in the format implied by the output extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err = loader.Save(args[1], m); err != nil {
				return err
			}
			a.logger.Info("model written", "path", args[1])
			return nil
		},
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
