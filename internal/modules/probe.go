package modules

import (
	"context"
	"fmt"
	"reflect"

	"capex/internal/capability"
	"capex/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// Outcome is what a lookup under the kind's policy produced.
type Outcome string

const (
	OutcomePresent     Outcome = "present"
	OutcomeEmpty       Outcome = "empty"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeFallback    Outcome = "fallback"
)

// OutcomeOf classifies a lookup result.
func OutcomeOf(res capability.Result) Outcome {
	switch {
	case res.Err() != nil:
		return OutcomeUnavailable
	case res.Fallback():
		return OutcomeFallback
	case res.Present():
		return OutcomePresent
	default:
		return OutcomeEmpty
	}
}

// ProbeResult is the status of one kind after racing lookups.
type ProbeResult struct {
	ModuleStatus `yaml:",inline"`

	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Lookups int     `json:"lookups" yaml:"lookups"`
	// Consistent reports whether every lookup observed the same implementation.
	Consistent bool   `json:"consistent" yaml:"consistent"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Probe performs concurrency lookups of every kind in kinds at the same time
// and reports what they observed. An empty kinds slice probes all kinds.
func Probe(ctx context.Context, inst *Installation, kinds []capability.Kind, concurrency int) ([]ProbeResult, error) {
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	if len(kinds) == 0 {
		kinds = capability.Kinds()
	}

	reg := inst.Registry()
	results := make([][]capability.Result, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		results[i] = make([]capability.Result, concurrency)
		for j := 0; j < concurrency; j++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i][j] = reg.Lookup(k)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ProbeResult, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, summarize(inst, k, results[i]))
	}
	logging.Debug(subsystem, "probed %d kinds with %d lookups each", len(kinds), concurrency)
	return out, nil
}

func summarize(inst *Installation, k capability.Kind, results []capability.Result) ProbeResult {
	pr := ProbeResult{
		ModuleStatus: inst.status(k),
		Outcome:      OutcomeOf(results[0]),
		Lookups:      len(results),
		Consistent:   true,
	}
	if err := results[0].Err(); err != nil {
		pr.Error = err.Error()
	}

	first, _ := results[0].Get()
	for _, res := range results[1:] {
		a, _ := res.Get()
		if OutcomeOf(res) != pr.Outcome || !sameAccess(first, a) {
			pr.Consistent = false
			break
		}
	}
	return pr
}

func sameAccess(a, b capability.Access) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
