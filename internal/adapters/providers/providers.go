package providers

import "group-trip-planner/internal/ports"

// All returns one synthetic provider per transport mode, in the order
// the aggregator should query them. The order matters downstream: it
// fixes tie-breaks among equal-cost options.
func All(rng *RandSource, currency string) []ports.OptionProvider {
	return []ports.OptionProvider{
		NewAirProvider(rng, currency),
		NewRailProvider(rng, currency),
		NewBusProvider(rng, currency),
		NewCarProvider(rng, currency),
		NewRideshareProvider(rng, currency),
		NewTaxiProvider(rng, currency),
		NewWalkProvider(currency),
	}
}
