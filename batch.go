package sexpr

import (
	"context"
	"runtime"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one expression of a batch.
type Result struct {
	Expr  string
	Value float64
	Err   error
}

// EvaluateAll evaluates independent expressions concurrently using at most
// workers goroutines (runtime.NumCPU() if workers is not positive). Results
// keep the order of exprs. The returned error combines the failures of every
// expression, or is the cancellation error of c, in which case no results
// are returned.
func (ctx *Context) EvaluateAll(c context.Context, exprs []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(exprs))

	g, gctx := errgroup.WithContext(c)
	g.SetLimit(workers)
	for i := range exprs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := ctx.Evaluate(exprs[i])
			results[i] = Result{Expr: exprs[i], Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for i := range results {
		if results[i].Err != nil {
			merr = multierror.Append(merr, errors.Wrapf(results[i].Err, "expression #%d %q", i+1, results[i].Expr))
		}
	}

	ctx.log().Debugf("%v: evaluated %d expressions with %d workers", ctx, len(exprs), workers)
	return results, merr.ErrorOrNil()
}

// EvaluateAll evaluates exprs concurrently with the default context.
func EvaluateAll(c context.Context, exprs []string) ([]Result, error) {
	return defaultContext.EvaluateAll(c, exprs, 0)
}
