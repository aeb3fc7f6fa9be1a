package dmysssp

// PivotConfig tunes the pivot threshold formula of spec §4.3:
//
//	k = max(1, ceil(|F|^CubeRootExponent * log(|F|+1)^LogExponent))
//
// The defaults (1/3, 2/3) match the m*log^(2/3) n target complexity the
// spec names; spec §9 explicitly leaves the constants unproven and asks
// for them to be exposed as tunables.
type PivotConfig struct {
	CubeRootExponent float64
	LogExponent      float64
}

// DefaultPivotConfig returns the spec §4.3 defaults.
func DefaultPivotConfig() PivotConfig {
	return PivotConfig{CubeRootExponent: 1.0 / 3.0, LogExponent: 2.0 / 3.0}
}

// RunConfig collects the tunables a dmySSSP invocation accepts, resolved
// from functional Options in the style of lvlath/builder's BuilderOption.
type RunConfig struct {
	Pivot PivotConfig

	// RecursionConstant is C in spec §4.6 step 2 (bmssp(P, B, budget=C*|F|)).
	RecursionConstant int

	// WithParents records a parent-tracking request. dmySSSP does not
	// read it: parent tracking follows from the entry point called
	// (SSSP vs SSSPWithParents).
	WithParents bool

	// stats is not set or read by dmySSSP; SSSPStatistics gets its
	// counters through dmySSSP's withStats argument instead.
	stats *runStats
}

// DefaultRunConfig returns the spec's defaults: the pivot defaults and
// C=8 (spec §4.6).
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Pivot:             DefaultPivotConfig(),
		RecursionConstant: 8,
	}
}

// Option mutates a RunConfig during dmySSSP construction.
type Option func(*RunConfig)

// WithPivotConfig overrides the pivot threshold formula's exponents.
func WithPivotConfig(cfg PivotConfig) Option {
	return func(rc *RunConfig) { rc.Pivot = cfg }
}

// WithRecursionConstant overrides C in spec §4.6 step 2 (default 8).
func WithRecursionConstant(c int) Option {
	return func(rc *RunConfig) { rc.RecursionConstant = c }
}

// withParents is unexported: parent tracking is selected by which public
// entry point the caller calls (SSSP vs SSSPWithParents), not by Option,
// since it changes the return signature.
func withParents() Option {
	return func(rc *RunConfig) { rc.WithParents = true }
}

func resolveConfig(opts ...Option) RunConfig {
	rc := DefaultRunConfig()
	for _, opt := range opts {
		opt(&rc)
	}
	return rc
}
