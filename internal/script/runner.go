package script

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Result summarises a script run.
type Result struct {
	Applied  int // actions that changed the puzzle
	Rejected int // station moves refused by the engine
	Solved   bool
	Snapshot engine.Snapshot
}

// Build creates the puzzle the script describes.
func (s Script) Build(logger *log.Logger) (*engine.Puzzle, error) {
	topo, err := registry.Create(s.Shape)
	if err != nil {
		return nil, err
	}
	return engine.New(s.Config,
		engine.WithTopology(topo),
		engine.WithBias(s.Bias.For(s.Config.Width, s.Config.Height)),
		engine.WithLogger(logger))
}

// Run applies every step to p in order.
func (s Script) Run(p *engine.Puzzle, logger *log.Logger) Result {
	var res Result
	for _, step := range s.Steps {
		for i := 0; i < step.Times; i++ {
			if apply(p, step) {
				res.Applied++
				continue
			}
			res.Rejected++
			if logger != nil {
				logger.Debug("step rejected",
					"action", step.Action,
					"dir", p.Topology().DirName(step.Dir),
					"station", p.Station())
			}
		}
	}
	res.Solved = p.IsSolved()
	res.Snapshot = p.Snapshot()
	return res
}

func apply(p *engine.Puzzle, step Step) bool {
	switch step.Action {
	case core.ActionRotate:
		return p.Rotate(step.Cell) == nil
	case core.ActionMove:
		return p.MoveStation(step.Dir)
	case core.ActionRegenerate:
		p.Regenerate(step.Bias.For(p.Width(), p.Height()))
	case core.ActionSolve:
		p.ForceSolve()
	case core.ActionReset:
		p.Reset()
	case core.ActionTick:
		p.Tick()
	}
	return true
}
