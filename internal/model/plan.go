package model

import (
	"fmt"
	"math"
	"strings"
)

// MonthsPerYear is the number of monthly buckets in a revenue plan.
const MonthsPerYear = 12

// YearRevenuePlan tracks one owner's annual revenue target and its monthly
// breakdown. MonthlyActuals fill in as entries arrive; MonthlyTargets are
// recomputed whenever the target changes or a prior year becomes available.
// A locked plan is frozen and must never be recomputed.
type YearRevenuePlan struct {
	OwnerID        string
	Year           int
	TargetRevenue  float64
	MonthlyActuals [MonthsPerYear]float64
	MonthlyTargets [MonthsPerYear]float64
	Locked         bool
}

// TotalActual sums the recorded monthly actuals.
func (p *YearRevenuePlan) TotalActual() float64 {
	var total float64
	for _, v := range p.MonthlyActuals {
		total += v
	}
	return total
}

// Validate checks plan invariants before persistence.
func (p *YearRevenuePlan) Validate() error {
	if strings.TrimSpace(p.OwnerID) == "" {
		return fmt.Errorf("%w: missing owner ID", ErrInvalidPlan)
	}
	if p.Year < 1900 || p.Year > 3000 {
		return fmt.Errorf("%w: implausible year %d", ErrInvalidPlan, p.Year)
	}
	if p.TargetRevenue < 0 || math.IsNaN(p.TargetRevenue) || math.IsInf(p.TargetRevenue, 0) {
		return fmt.Errorf("%w: target revenue must be a finite non-negative number", ErrInvalidPlan)
	}
	return nil
}
