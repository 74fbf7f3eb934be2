package domain

import (
	"fmt"
	"slices"

	"github.com/aretw0/physrisk/pkg/schema"
)

// Cross-field rules. Rules over defaulted fields only fire once the caller
// supplied at least one of the fields involved, because the defaults are
// placeholders and are not required to agree with each other.

func suppliedAny(r schema.Record, names ...string) bool {
	for _, n := range names {
		if r.Supplied(n) {
			return true
		}
	}
	return false
}

func vectorLen(r schema.Record, name string) int {
	a, _ := schema.Lookup[schema.Array[float64]](r, name)
	return a.Len()
}

func listLen(r schema.Record, name string) int {
	l, _ := schema.Lookup[[]any](r, name)
	return len(l)
}

func sameLength(a, b string) schema.Check {
	return func(r schema.Record) error {
		if !suppliedAny(r, a, b) {
			return nil
		}
		if la, lb := vectorLen(r, a), vectorLen(r, b); la != lb {
			return schema.Violation(b, fmt.Sprintf("length %d does not match %s length %d", lb, a, la), r.Get(b))
		}
		return nil
	}
}

func binned(edges, probs string) schema.Check {
	return func(r schema.Record) error {
		if !suppliedAny(r, edges, probs) {
			return nil
		}
		if le, lp := vectorLen(r, edges), vectorLen(r, probs); le != lp+1 {
			return schema.Violation(edges,
				fmt.Sprintf("%d edges cannot bound %d bins, want %d", le, lp, lp+1), r.Get(edges))
		}
		return nil
	}
}

func checkVulnerabilityCurve(r schema.Record) error {
	n := listLen(r, "intensity")
	var errs []error
	for _, name := range []string{"impact_mean", "impact_std"} {
		if l := listLen(r, name); l != n {
			errs = append(errs, schema.Violation(name,
				fmt.Sprintf("length %d does not match intensity length %d", l, n), r.Get(name)))
		}
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

func bins(edges int) int { return max(edges-1, 0) }

func checkVulnerabilityDistrib(r schema.Record) error {
	if !suppliedAny(r, "intensity_bin_edges", "impact_bin_edges", "prob_matrix") {
		return nil
	}
	m, _ := schema.Lookup[schema.Array[float64]](r, "prob_matrix")
	want := []int{bins(vectorLen(r, "intensity_bin_edges")), bins(vectorLen(r, "impact_bin_edges"))}
	if got := m.Shape(); !slices.Equal(got, want) {
		return schema.Violation("prob_matrix",
			fmt.Sprintf("shape %v does not match bin edges, want %v", got, want), r.Get("prob_matrix"))
	}
	return nil
}

func checkIntensityCurve(r schema.Record) error {
	index, err := indexValuesFrom(r.Get("index_values"))
	if err != nil {
		return schema.Violation("index_values", err.Error(), r.Get("index_values"))
	}
	periods, _ := schema.Lookup[[]any](r, "return_periods")

	var errs []error
	if len(periods) > 0 && index.Len() > 0 && !samePeriods(periods, index) {
		errs = append(errs, schema.Violation("return_periods",
			"deprecated alias disagrees with index_values", r.Get("return_periods")))
	}

	effective := index.Len()
	if effective == 0 {
		effective = len(periods)
	}
	if n := listLen(r, "intensities"); n > 0 && effective > 0 && n != effective {
		errs = append(errs, schema.Violation("intensities",
			fmt.Sprintf("length %d does not match index length %d", n, effective), r.Get("intensities")))
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

func samePeriods(periods []any, index IndexValues) bool {
	if index.IsLabels() || len(periods) != len(index.Numbers) {
		return false
	}
	for i, p := range periods {
		if p != index.Numbers[i] {
			return false
		}
	}
	return true
}
