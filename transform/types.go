// Package transform provides tunable options, capability interfaces and error
// definitions for structural rewrites of a metabolic network.
package transform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fluxnet/core"
)

// Sentinel errors for transformations.
var (
	// ErrNilNetwork is returned if a nil network is passed.
	ErrNilNetwork = errors.New("transform: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("transform: invalid option supplied")
)

// Default suffixes appended to the ids of split reactions.
const (
	DefaultForwardSuffix  = "_f"
	DefaultBackwardSuffix = "_b"
)

// Network is the minimal surface MakeIrreversible needs: a reaction catalog,
// the reaction→metabolite lookup table and add/remove primitives.
type Network interface {
	ReactionIDs() []string
	Reaction(id string) (core.Reaction, bool)
	ReactionMetaboliteTable() *core.Table
	AddReaction(r core.Reaction, opts ...core.ReactionOption) error
	AddStoichiometry(edges ...core.Edge) error
	RemoveReaction(id string)
}

// BoundedNetwork is implemented by networks that may carry flux bounds.
// HasFluxBounds reports whether the layer is actually present.
type BoundedNetwork interface {
	Network
	HasFluxBounds() bool
	FluxBounds(id string) (core.Bounds, bool)
	SetFluxBounds(id string, b core.Bounds) error
}

// RuledNetwork is implemented by networks that may carry GPR rules.
// HasGeneRules reports whether the layer is actually present.
type RuledNetwork interface {
	Network
	HasGeneRules() bool
	Rule(id string) (string, bool)
	SetRule(id, text string) error
}

// Option configures MakeIrreversible via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// transformation is invoked.
type Option func(*Options)

// Options holds the parameters of MakeIrreversible.
type Options struct {
	// ForwardSuffix and BackwardSuffix name the split halves: "<id><suffix>".
	ForwardSuffix  string
	BackwardSuffix string

	// Logger receives one debug record per split reaction.
	Logger *slog.Logger

	// OnSplit is called after each reaction has been replaced by its halves.
	OnSplit func(original string, s Split)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with "_f"/"_b" suffixes, a discarding
// logger and a no-op OnSplit hook.
func DefaultOptions() Options {
	return Options{
		ForwardSuffix:  DefaultForwardSuffix,
		BackwardSuffix: DefaultBackwardSuffix,
		Logger:         slog.New(slog.DiscardHandler),
		OnSplit:        func(string, Split) {},
	}
}

// WithSuffixes overrides the suffixes of the split halves.
// Both must be non-empty and distinct, otherwise ErrOptionViolation.
func WithSuffixes(forward, backward string) Option {
	return func(o *Options) {
		switch {
		case forward == "" || backward == "":
			o.err = fmt.Errorf("%w: suffixes must be non-empty", ErrOptionViolation)
		case forward == backward:
			o.err = fmt.Errorf("%w: suffixes must differ (%q)", ErrOptionViolation, forward)
		default:
			o.ForwardSuffix, o.BackwardSuffix = forward, backward
		}
	}
}

// WithLogger routes debug output to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSplit registers a callback run after every split.
func WithOnSplit(fn func(original string, s Split)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// Split names the two irreversible halves of a reversible reaction.
type Split struct {
	Forward  string
	Backward string
}

// Mapping records every split performed, in processing order.
type Mapping struct {
	originals []string
	splits    map[string]Split
}

func newMapping(capacity int) Mapping {
	return Mapping{
		originals: make([]string, 0, capacity),
		splits:    make(map[string]Split, capacity),
	}
}

func (m *Mapping) add(original string, s Split) {
	if _, seen := m.splits[original]; !seen {
		m.originals = append(m.originals, original)
	}
	m.splits[original] = s
}

// Len returns the number of split reactions.
func (m Mapping) Len() int { return len(m.originals) }

// Split returns the halves of original, if it was split.
func (m Mapping) Split(original string) (Split, bool) {
	s, ok := m.splits[original]
	return s, ok
}

// Originals returns the split reaction ids in processing order.
func (m Mapping) Originals() []string {
	out := make([]string, len(m.originals))
	copy(out, m.originals)
	return out
}

// Map returns a copy of the mapping as a plain map.
func (m Mapping) Map() map[string]Split {
	out := make(map[string]Split, len(m.splits))
	for k, v := range m.splits {
		out[k] = v
	}
	return out
}
