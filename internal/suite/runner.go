package suite

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seq-rebuild/internal/ops"
	"seq-rebuild/node"
)

// Result is the outcome of one case.
type Result struct {
	Name   string      `yaml:"name"`
	Op     string      `yaml:"op"`
	Got    *node.Value `yaml:"got,omitempty"`
	Want   *node.Value `yaml:"want,omitempty"`
	Passed bool        `yaml:"passed"`
	Error  string      `yaml:"error,omitempty"`
}

// Report collects the results of a run in case order.
type Report struct {
	// RunID tags the report and every log line of the run.
	RunID   string   `yaml:"runId"`
	Results []Result `yaml:"results"`
	Passed  int      `yaml:"passed"`
	Failed  int      `yaml:"failed"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Runner evaluates suites against a registry.
type Runner struct {
	Registry *ops.Registry
	// Workers bounds the number of cases evaluated at once; zero means GOMAXPROCS.
	Workers int
	Logger  *zap.Logger
}

// Run evaluates every case of s. A failing case never stops the run; only a
// cancelled context does, in which case the context error is returned.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run", runID))

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{RunID: runID, Results: make([]Result, len(s.Cases))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex

	for i, c := range s.Cases {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := r.evaluate(c)

			if res.Passed {
				logger.Debug("case passed", zap.String("case", c.Name), zap.String("op", c.Op))
			} else {
				logger.Warn("case failed", failureFields(res)...)
			}

			mu.Lock()
			report.Results[i] = res
			if res.Passed {
				report.Passed++
			} else {
				report.Failed++
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("suite finished",
		zap.Int("cases", len(s.Cases)),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

func (r *Runner) evaluate(c Case) Result {
	res := Result{Name: c.Name, Op: c.Op}
	if c.HasWant {
		want := c.Want
		res.Want = &want
	}

	got, err := r.Registry.Call(c.Op, c.Args)
	if err != nil {
		res.Error = err.Error()
		res.Passed = c.WantErr

		return res
	}

	res.Got = &got

	switch {
	case c.WantErr:
		res.Error = "expected an error"
	case c.HasWant && !node.Equal(got, c.Want):
		res.Error = "result mismatch"
	default:
		res.Passed = true
	}

	return res
}

func failureFields(res Result) []zap.Field {
	fields := []zap.Field{
		zap.String("case", res.Name),
		zap.String("op", res.Op),
		zap.String("error", res.Error),
	}

	if res.Got != nil {
		fields = append(fields, zap.Stringer("got", *res.Got))
	}
	if res.Want != nil {
		fields = append(fields, zap.Stringer("want", *res.Want))
	}

	return fields
}
