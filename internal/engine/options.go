package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wirelight/internal/registry"
	"github.com/vovakirdan/wirelight/internal/topology"
)

type options struct {
	topo   registry.Topology
	bias   Bias
	logger *log.Logger
}

// Option configures a Puzzle.
type Option func(*options)

// WithTopology selects the grid shape. The default is the square grid.
func WithTopology(t registry.Topology) Option {
	return func(o *options) {
		if t != nil {
			o.topo = t
		}
	}
}

// WithBias sets the per-axis maximum edge weights used for generation.
func WithBias(b Bias) Option {
	return func(o *options) {
		o.bias = b
	}
}

// WithLogger routes generation diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		topo:   topology.Square{},
		logger: log.New(io.Discard),
	}
}
