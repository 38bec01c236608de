// Package schedule owns every named-interval to day-count conversion.
// No other package computes calendar offsets on its own.
package schedule

import (
	"fmt"
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const (
	PeriodicityWeekly       = "weekly"
	PeriodicityMonthly      = "monthly"
	PeriodicityQuarterly    = "quarterly"
	PeriodicitySemiannual   = "semiannual"
	PeriodicityAnnual       = "annual"
	PeriodicityBiannual     = "biannual"
	PeriodicityTriennial    = "triennial"
	PeriodicityQuinquennial = "quinquennial"
	PeriodicityDecennial    = "decennial"
)

// defaultDays is used when a periodicity name is not in the table.
const defaultDays = 365

// Table maps periodicity names to day counts. It is built once at
// startup and passed around read-only.
type Table map[string]int

func DefaultTable() Table {
	return Table{
		PeriodicityWeekly:       7,
		PeriodicityMonthly:      30,
		PeriodicityQuarterly:    90,
		PeriodicitySemiannual:   180,
		PeriodicityAnnual:       365,
		PeriodicityBiannual:     730,
		PeriodicityTriennial:    1095,
		PeriodicityQuinquennial: 1825,
		PeriodicityDecennial:    3650,
	}
}

// Days returns the day count for a periodicity name, falling back to
// one year for unknown names.
func (t Table) Days(periodicity string) int {
	if d, ok := t[periodicity]; ok {
		return d
	}
	return defaultDays
}

// Calculator computes validity dates from completion dates and named
// periodicities.
type Calculator struct {
	table Table
	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewCalculator(table Table) *Calculator {
	return &Calculator{table: table, now: time.Now}
}

func NewCalculatorAt(table Table, now func() time.Time) *Calculator {
	return &Calculator{table: table, now: now}
}

// ComputeValidity returns completionDate + the periodicity interval as a
// YYYY-MM-DD string. An empty completionDate means "today" (UTC). A
// completionDate that does not parse is a validation error, never a
// silent default.
func (c *Calculator) ComputeValidity(completionDate, periodicity string) (string, error) {
	base := c.now().UTC()
	if completionDate != "" {
		parsed, err := time.Parse(model.DateLayout, completionDate)
		if err != nil {
			return "", fmt.Errorf("completion date %q: %w", completionDate, model.ErrValidation)
		}
		base = parsed
	}

	return base.AddDate(0, 0, c.table.Days(periodicity)).Format(model.DateLayout), nil
}
