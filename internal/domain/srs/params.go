// Package srs implements the review scheduling policy for memorized chapters.
//
// The policy is a coarse three-tier schedule keyed entirely off the time
// elapsed since the chapter was last studied, not per-item recall history:
// chapters untouched for a week review on a 7-day interval, chapters
// untouched for three days on a 3-day interval, and everything fresher daily.
package srs

import "time"

// Params defines the configurable thresholds and intervals of the schedule.
// Thresholds are compared against whole days elapsed since the last study;
// the matching interval is added to the last-studied time to produce the
// next review date.
type Params struct {
	// LongThresholdDays promotes a chapter to the long interval once this
	// many days have elapsed.
	LongThresholdDays int
	// MediumThresholdDays promotes a chapter to the medium interval.
	MediumThresholdDays int

	LongIntervalDays   int
	MediumIntervalDays int
	ShortIntervalDays  int
}

// NewDefaultParams creates a Params instance with the standard 1/3/7 tiers.
func NewDefaultParams() *Params {
	return &Params{
		LongThresholdDays:   7,
		MediumThresholdDays: 3,
		LongIntervalDays:    7,
		MediumIntervalDays:  3,
		ShortIntervalDays:   1,
	}
}

// IntervalFor returns the review interval for a chapter last studied at the
// given time, evaluated at now.
func (p *Params) IntervalFor(lastStudied, now time.Time) time.Duration {
	daysSince := int(now.Sub(lastStudied).Hours() / 24)

	days := p.ShortIntervalDays
	if daysSince >= p.LongThresholdDays {
		days = p.LongIntervalDays
	} else if daysSince >= p.MediumThresholdDays {
		days = p.MediumIntervalDays
	}

	return time.Duration(days) * 24 * time.Hour
}
