package checkkit

import (
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/checkkit/pkg/logger"
	"github.com/dmitrymomot/checkkit/pkg/tabular"
)

// ProgressFunc receives progress feedback after each rule completes.
type ProgressFunc func(done, total int, rule string)

// Runner executes a rule set against datasets and serves the summary and
// error-log deliverables of the most recent run. A Runner is not safe for
// concurrent use; create one per goroutine.
type Runner struct {
	set      *RuleSet
	aliases  AliasMap
	log      *slog.Logger
	splitter NameSplitter
	progress ProgressFunc
	defaults []RunOption

	// state of the most recent completed run
	ran     bool
	results []Result
	dataset *tabular.Dataset
	group   string
	runID   uuid.UUID
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger attaches a structured logger. Without one the engine stays
// silent.
func WithLogger(log *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSplitter replaces the naming convention used for shared inference.
func WithSplitter(s NameSplitter) RunnerOption {
	return func(r *Runner) {
		if s != nil {
			r.splitter = s
		}
	}
}

// WithProgress registers a progress callback for the sequential rule loop.
func WithProgress(fn ProgressFunc) RunnerOption {
	return func(r *Runner) { r.progress = fn }
}

// WithDefaults sets run options applied to every Run before the per-call
// options, so environment- or file-driven defaults stay overridable.
func WithDefaults(opts ...RunOption) RunnerOption {
	return func(r *Runner) { r.defaults = append(r.defaults, opts...) }
}

// RunOption configures a single validation run.
type RunOption func(*runConfig)

type runConfig struct {
	inferShared  bool
	group        string
	optionValues map[string]any
}

// WithInferShared toggles naming-convention inference for unresolved
// parameters. Off by default: silent multi-column binding surprises
// callers who expected an exact match.
func WithInferShared(v bool) RunOption {
	return func(c *runConfig) { c.inferShared = v }
}

// WithGroupLabel tags every summary and error-log row of this run,
// distinguishing the source when several datasets are validated in turn.
func WithGroupLabel(label string) RunOption {
	return func(c *runConfig) { c.group = label }
}

// WithOptionValues supplies values for option parameters by name, shared
// by all rules of the run and overriding declared defaults.
func WithOptionValues(values map[string]any) RunOption {
	return func(c *runConfig) {
		if c.optionValues == nil {
			c.optionValues = make(map[string]any, len(values))
		}
		for name, v := range values {
			c.optionValues[name] = v
		}
	}
}

// New creates a Runner for the given rule set.
func New(set *RuleSet, opts ...RunnerOption) *Runner {
	r := &Runner{
		set:      set,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		splitter: UnderscoreSplitter{},
	}
	if set != nil {
		r.aliases = set.Aliases()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run binds every rule of the set against the dataset, executes them
// sequentially, caches the results, and returns them. Binding happens for
// all rules before any rule executes, so a declaration fault aborts the
// run without partial validation. Any error leaves the previous run's
// cached results untouched.
func (r *Runner) Run(ds *tabular.Dataset, opts ...RunOption) ([]Result, error) {
	if r.set == nil {
		return nil, &ConfigurationError{Reason: "runner has no rule set"}
	}
	if ds == nil {
		return nil, &ConfigurationError{Rule: r.set.name, Reason: "dataset is required"}
	}

	cfg := runConfig{}
	for _, opt := range r.defaults {
		opt(&cfg)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	started := time.Now()
	rules := r.set.rules
	log := r.log.With(logger.RunID(runID.String()), logger.RuleSet(r.set.name))
	log.Info("validation run started",
		slog.Int("rules", len(rules)),
		logger.Rows(ds.Len()),
		slog.Bool("infer_shared", cfg.inferShared),
	)

	bindCfg := BindConfig{Splitter: r.splitter, InferShared: cfg.inferShared}
	bindings := make([]Binding, len(rules))
	for i, rule := range rules {
		b, err := Bind(rule, ds, r.aliases, bindCfg)
		if err != nil {
			log.Error("binding failed", logger.Rule(rule.name), logger.Error(err))
			return nil, err
		}
		bindings[i] = b
		log.Debug("rule bound",
			logger.Rule(rule.name),
			slog.Int("expansions", b.Expansions()),
			slog.Any("columns", b.Map()),
		)
	}

	var results []Result
	for i, rule := range rules {
		out, err := runRule(rule, bindings[i], ds, cfg.optionValues)
		if err != nil {
			log.Error("rule execution failed", logger.Rule(rule.name), logger.Error(err))
			return nil, err
		}
		results = append(results, out...)
		log.Debug("rule executed",
			logger.Rule(rule.name),
			slog.Int("done", i+1),
			slog.Int("total", len(rules)),
		)
		if r.progress != nil {
			r.progress(i+1, len(rules), rule.name)
		}
	}

	r.ran = true
	r.results = results
	r.dataset = ds
	r.group = cfg.group
	r.runID = runID

	log.Info("validation run completed",
		slog.Int("results", len(results)),
		logger.Duration(time.Since(started)),
	)
	return slices.Clone(results), nil
}

// Results returns the cached results of the most recent run.
func (r *Runner) Results() ([]Result, error) {
	if !r.ran {
		return nil, &NotRunError{Op: "results"}
	}
	return slices.Clone(r.results), nil
}

// Summary renders the summary table of the most recent run: one row per
// (rule, column combination) with validated/passed/failed counts, sorted
// by failures descending.
func (r *Runner) Summary() (*tabular.Dataset, error) {
	if !r.ran {
		return nil, &NotRunError{Op: "summary"}
	}
	return buildSummary(r.results, r.group)
}

// ErrorLog renders the failing records of the most recent run: the
// original dataset rows that failed any check, tagged with the check
// instance and, when set, the run's group label.
func (r *Runner) ErrorLog() (*tabular.Dataset, error) {
	if !r.ran {
		return nil, &NotRunError{Op: "error_log"}
	}
	return buildErrorLog(r.results, r.dataset, r.group)
}

// RunSummary runs the rule set and renders the summary in one call.
func (r *Runner) RunSummary(ds *tabular.Dataset, opts ...RunOption) (*tabular.Dataset, error) {
	if _, err := r.Run(ds, opts...); err != nil {
		return nil, err
	}
	return r.Summary()
}

// RunErrorLog runs the rule set and renders the error log in one call.
func (r *Runner) RunErrorLog(ds *tabular.Dataset, opts ...RunOption) (*tabular.Dataset, error) {
	if _, err := r.Run(ds, opts...); err != nil {
		return nil, err
	}
	return r.ErrorLog()
}

// LastRunID returns the identifier of the most recent completed run.
func (r *Runner) LastRunID() (uuid.UUID, bool) {
	return r.runID, r.ran
}
