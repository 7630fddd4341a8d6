package domain

import "fmt"

// TransportMode enumerates the transport modes the planner knows about.
type TransportMode string

const (
	ModeAir       TransportMode = "AIR"
	ModeRail      TransportMode = "RAIL"
	ModeBus       TransportMode = "BUS"
	ModeCar       TransportMode = "CAR"
	ModeRideshare TransportMode = "RIDESHARE"
	ModeTaxi      TransportMode = "TAXI"
	ModeWalk      TransportMode = "WALK"
)

// AllModes lists every mode in stable order. The aggregator queries
// adapters in this order, which fixes the tie-break ordering downstream.
var AllModes = []TransportMode{
	ModeAir,
	ModeRail,
	ModeBus,
	ModeCar,
	ModeRideshare,
	ModeTaxi,
	ModeWalk,
}

// ParseTransportMode converts an external string into a TransportMode.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(s)
	for _, known := range AllModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("parse transport mode: unknown mode %q", s)
}
