package life

import "torus-life/internal/core"

// Parameters publishes the configuration and run status for HUDs.
func (l *Life) Parameters() core.ParameterSnapshot {
	pattern := l.cfg.Pattern
	if pattern == "" {
		pattern = "random"
	}
	board := []core.Parameter{
		core.IntParam("size", "Size", l.cfg.Size),
		core.Int64Param("seed", "Seed", l.seed),
		core.FloatParam("density", "Density", l.cfg.Density),
		core.StringParam("pattern", "Pattern", pattern),
	}

	run := []core.Parameter{core.StringParam("phase", "Phase", PhaseEmpty.String())}
	if b := l.board; b != nil {
		loop, looped := b.Loop()
		run = []core.Parameter{
			core.StringParam("phase", "Phase", b.Phase().String()),
			core.IntParam("turn", "Turn", b.Turn()),
			core.IntParam("live", "Live cells", b.LiveCount()),
			core.IntParam("snapshots", "Snapshots", b.History().Snapshots()),
			core.BoolParam("looped", "Looped", looped),
		}
		if looped {
			run = append(run,
				core.IntParam("loop_first", "Loop from turn", loop.First),
				core.IntParam("period", "Period", loop.Period()),
			)
		}
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: board},
		{Name: "Run", Params: run},
	}}
}
