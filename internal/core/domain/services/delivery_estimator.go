package services

import (
	"time"
)

// DefaultCharsPerDay is the assumed daily translation throughput used for
// delivery estimates when configuration supplies no override.
const DefaultCharsPerDay = 8000

// DeliveryEstimator computes an order's potential delivery date from the
// document size and a configured characters-per-day throughput. The
// throughput is an injected snapshot, never read from ambient process state.
type DeliveryEstimator struct {
	charsPerDay int
}

// NewDeliveryEstimator creates an estimator with the given daily throughput.
// Non-positive values fall back to DefaultCharsPerDay.
func NewDeliveryEstimator(charsPerDay int) DeliveryEstimator {
	if charsPerDay <= 0 {
		charsPerDay = DefaultCharsPerDay
	}
	return DeliveryEstimator{charsPerDay: charsPerDay}
}

// Estimate returns now + ceil(charCountWithSpaces / charsPerDay) days.
func (e DeliveryEstimator) Estimate(now time.Time, charCountWithSpaces int) time.Time {
	days := (charCountWithSpaces + e.charsPerDay - 1) / e.charsPerDay
	return now.AddDate(0, 0, days)
}
