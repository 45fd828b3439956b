// Package target computes monthly revenue-target curves from an annual
// target and whatever historical signal is available.
package target

import (
	"github.com/shopspring/decimal"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// blendFloorRatio keeps every month of a blended distribution at or above
// this share of the flat monthly average, so no month collapses to
// near-zero.
const blendFloorRatio = 0.5

// seasonalCurve is the fixed fallback multiplier per month, applied to the
// flat monthly average when no historical signal exists. Lower in Q1,
// peaking in late summer; the twelve multipliers sum to 12.
var seasonalCurve = [model.MonthsPerYear]float64{
	0.70, 0.75, 0.85, 0.95, 1.00, 1.05, 1.10, 1.15, 1.20, 1.15, 1.10, 1.00,
}

// YearActuals is the monthly revenue actually recorded for one year.
type YearActuals struct {
	Monthly [model.MonthsPerYear]float64
}

// Total sums the monthly actuals.
func (y *YearActuals) Total() float64 {
	var total float64
	for _, v := range y.Monthly {
		total += v
	}
	return total
}

// Distribute computes twelve monthly targets summing to targetRevenue. The
// methods are tried in priority order: the prior year's monthly shares, a
// blend of the current year's partial actuals, then the fixed seasonal
// curve. Whatever branch runs, the sum invariant holds to within a cent.
func Distribute(targetRevenue float64, previous, current *YearActuals) [model.MonthsPerYear]float64 {
	if targetRevenue <= 0 {
		return [model.MonthsPerYear]float64{}
	}

	if previous != nil {
		if total := previous.Total(); total > 0 {
			return proportional(targetRevenue, previous.Monthly, total)
		}
	}

	if current != nil {
		if total := current.Total(); total > 0 {
			return blended(targetRevenue, current.Monthly, total)
		}
	}

	return seasonal(targetRevenue)
}

// proportional applies the prior year's monthly shares to the new target,
// preserving known seasonality.
func proportional(targetRevenue float64, actuals [model.MonthsPerYear]float64, total float64) [model.MonthsPerYear]float64 {
	ratio := targetRevenue / total

	var targets [model.MonthsPerYear]float64
	for i, v := range actuals {
		targets[i] = v * ratio
	}
	return reconcile(targets, targetRevenue)
}

// blended distributes the gap to the annual target across months in
// proportion to the current year's partial actuals, flooring every month at
// half the flat average.
func blended(targetRevenue float64, actuals [model.MonthsPerYear]float64, total float64) [model.MonthsPerYear]float64 {
	gap := targetRevenue - total
	floor := targetRevenue / model.MonthsPerYear * blendFloorRatio

	var targets [model.MonthsPerYear]float64
	var sum float64
	for i, v := range actuals {
		t := v + gap*(v/total)
		if t < floor {
			t = floor
		}
		targets[i] = t
		sum += t
	}

	// Flooring only raises months, so any overage is absorbed by the months
	// above the floor, in proportion to their headroom. The floors total half
	// the target, so headroom always covers the overage.
	overage := sum - targetRevenue
	if overage > 0 {
		var headroom float64
		for _, t := range targets {
			if t > floor {
				headroom += t - floor
			}
		}
		if headroom > 0 {
			for i, t := range targets {
				if t > floor {
					targets[i] = t - overage*(t-floor)/headroom
				}
			}
		}
	}

	return reconcile(targets, targetRevenue)
}

// seasonal applies the fixed fallback curve to the flat monthly average.
func seasonal(targetRevenue float64) [model.MonthsPerYear]float64 {
	average := targetRevenue / model.MonthsPerYear

	var targets [model.MonthsPerYear]float64
	for i, multiplier := range seasonalCurve {
		targets[i] = average * multiplier
	}
	return reconcile(targets, targetRevenue)
}

// EvenSplit divides a target into twelve equal monthly amounts with
// cent-accurate remainder distribution: every month gets the floored cent
// base and the first months each carry one extra cent until the remainder is
// spent. The result always sums to the target exactly at cent precision.
func EvenSplit(targetRevenue float64) [model.MonthsPerYear]float64 {
	var targets [model.MonthsPerYear]float64
	if targetRevenue <= 0 {
		return targets
	}

	total := decimal.NewFromFloat(targetRevenue)
	months := decimal.NewFromInt(model.MonthsPerYear)
	cent := decimal.New(1, -2)

	base := total.Div(months).RoundDown(2)
	remainder := total.Sub(base.Mul(months)).Round(2)
	extraCents := int(remainder.Mul(decimal.New(1, 2)).Round(0).IntPart())

	for i := range targets {
		m := base
		if i < extraCents {
			m = m.Add(cent)
		}
		targets[i], _ = m.Float64()
	}
	return targets
}

// reconcile pins the sum of the targets to the annual target. Proportional
// arithmetic drifts by floating-point dust; anything at or above a
// hundredth of a cent is folded into the largest month so downstream
// gap-to-target math never sees a violated sum.
func reconcile(targets [model.MonthsPerYear]float64, targetRevenue float64) [model.MonthsPerYear]float64 {
	var sum float64
	largest := 0
	for i, t := range targets {
		sum += t
		if t > targets[largest] {
			largest = i
		}
	}

	diff := targetRevenue - sum
	if diff > 1e-4 || diff < -1e-4 {
		targets[largest] += diff
	}
	return targets
}
