package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fluxnet/core"
	"github.com/katalvlaran/fluxnet/loader"
)

// app carries the state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	strict    bool
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:          "fluxnet",
		Short:        "Inspect and transform metabolic network models",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(a.logLevel, a.logFormat, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.strict, "strict", false, "fail on references to unknown entities instead of skipping them")

	root.AddCommand(
		a.showCmd(),
		a.matrixCmd(),
		a.irreversibleCmd(),
		a.gprCmd(),
		a.knockoutCmd(),
		a.biomassCmd(),
		a.reachCmd(),
		a.checkCmd(),
		a.convertCmd(),
	)

	return root
}

// load reads a model file and reports what was loaded.
func (a *app) load(path string) (*core.Model, error) {
	var opts []core.ModelOption
	if a.strict {
		opts = append(opts, core.WithStrictReferences())
	}
	m, err := loader.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	a.logger.Info("model loaded",
		"path", path,
		"id", m.ID(),
		"metabolites", m.MetaboliteCount(),
		"reactions", m.ReactionCount(),
		"edges", m.EdgeCount(),
	)
	if undeclared := m.UndeclaredGenes(); len(undeclared) > 0 {
		a.logger.Warn("rules reference undeclared genes", "genes", undeclared)
	}

	return m, nil
}
