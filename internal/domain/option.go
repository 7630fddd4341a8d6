package domain

import (
	"fmt"
	"time"
)

// Represents one candidate single-leg itinerary between two locations.
// A TransportOption is produced by a provider adapter and is immutable
// thereafter; the engine only reads it.
//
// Costs are integer minor-currency units (e.g. cents) so that summing
// across participants never drifts.
type TransportOption struct {
	ID              string
	Mode            TransportMode
	Provider        string
	From            Location
	To              Location
	Departure       time.Time
	Arrival         time.Time
	DurationMinutes int
	CostCents       int64
	Currency        string
	Stops           []Location
	BookingRef      string
}

// Validate checks the invariants every adapter must uphold:
// non-negative cost and duration, and a duration that matches the
// departure/arrival pair.
func (o TransportOption) Validate() error {
	if o.DurationMinutes < 0 {
		return fmt.Errorf("transport option %s: negative duration %d", o.ID, o.DurationMinutes)
	}
	if o.CostCents < 0 {
		return fmt.Errorf("transport option %s: negative cost %d", o.ID, o.CostCents)
	}
	if got := int(o.Arrival.Sub(o.Departure) / time.Minute); got != o.DurationMinutes {
		return fmt.Errorf(
			"transport option %s: duration %dm does not match departure/arrival span %dm",
			o.ID, o.DurationMinutes, got,
		)
	}
	return nil
}
