package providers

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"group-trip-planner/internal/domain"
)

// RandSource wraps a seeded *rand.Rand with a lock so the synthetic
// adapters stay safe under the planner's concurrent fan-out. Injecting
// the source keeps option generation reproducible in tests; nothing in
// this package touches the global generator.
type RandSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform int in [0, n).
func (s *RandSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// pick returns a uniformly chosen element of names.
func (s *RandSource) pick(names []string) string {
	return names[s.IntN(len(names))]
}

// newOption assembles a TransportOption that satisfies the adapter
// invariants: arrival derived from departure + duration, cost and
// duration non-negative.
func newOption(
	mode domain.TransportMode,
	provider string,
	from, to domain.Location,
	departure time.Time,
	durationMinutes int,
	costCents int64,
	currency string,
	stops []domain.Location,
) domain.TransportOption {
	return domain.TransportOption{
		ID:              uuid.NewString(),
		Mode:            mode,
		Provider:        provider,
		From:            from,
		To:              to,
		Departure:       departure,
		Arrival:         departure.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		CostCents:       costCents,
		Currency:        currency,
		Stops:           stops,
	}
}
