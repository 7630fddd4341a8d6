package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"group-trip-planner/internal/domain"
)

type stubProvider struct {
	mode domain.TransportMode
	opts []domain.TransportOption
	err  error
}

func (s *stubProvider) Mode() domain.TransportMode { return s.mode }

func (s *stubProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	return s.opts, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stubOption(id string, mode domain.TransportMode, costCents int64, durationMinutes int) domain.TransportOption {
	o := option(id, costCents, durationMinutes)
	o.Mode = mode
	return o
}

var (
	locA   = domain.Location{Code: "A", Name: "Alpha"}
	locB   = domain.Location{Code: "B", Name: "Beta"}
	depart = time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
)

func TestGetOptionsSortsByCostAscending(t *testing.T) {
	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeAir, opts: []domain.TransportOption{
			stubOption("air", domain.ModeAir, 20000, 90),
		}},
		&stubProvider{mode: domain.ModeRail, opts: []domain.TransportOption{
			stubOption("rail", domain.ModeRail, 4000, 300),
		}},
		&stubProvider{mode: domain.ModeBus, opts: []domain.TransportOption{
			stubOption("bus", domain.ModeBus, 2000, 500),
		}},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	for i, want := range []string{"bus", "rail", "air"} {
		if opts[i].ID != want {
			t.Fatalf("opts[%d] = %q, want %q", i, opts[i].ID, want)
		}
	}
}

// Equal-cost options keep adapter registration order (stable sort).
func TestGetOptionsStableTieBreak(t *testing.T) {
	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeRail, opts: []domain.TransportOption{
			stubOption("rail", domain.ModeRail, 5000, 300),
		}},
		&stubProvider{mode: domain.ModeBus, opts: []domain.TransportOption{
			stubOption("bus", domain.ModeBus, 5000, 500),
		}},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts[0].ID != "rail" || opts[1].ID != "bus" {
		t.Fatalf("tie broken against registration order: %q, %q", opts[0].ID, opts[1].ID)
	}
}

func TestGetOptionsModeFilter(t *testing.T) {
	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeAir, opts: []domain.TransportOption{
			stubOption("air", domain.ModeAir, 20000, 90),
		}},
		&stubProvider{mode: domain.ModeRail, opts: []domain.TransportOption{
			stubOption("rail", domain.ModeRail, 4000, 300),
		}},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, domain.ModeRail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 || opts[0].ID != "rail" {
		t.Fatalf("mode filter leaked other adapters: %+v", opts)
	}
}

func TestGetOptionsAllEmptyIsNotAnError(t *testing.T) {
	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeAir},
		&stubProvider{mode: domain.ModeRail},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 0 {
		t.Fatalf("expected empty result, got %d options", len(opts))
	}
}

func TestGetOptionsDegradesFailedProvider(t *testing.T) {
	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeAir, err: errors.New("quota exhausted")},
		&stubProvider{mode: domain.ModeRail, opts: []domain.TransportOption{
			stubOption("rail", domain.ModeRail, 4000, 300),
		}},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, "")
	if err != nil {
		t.Fatalf("provider failure must not fail the aggregation: %v", err)
	}
	if len(opts) != 1 || opts[0].ID != "rail" {
		t.Fatalf("expected only the healthy adapter's options, got %+v", opts)
	}
}

func TestGetOptionsSkipsInvalidOptions(t *testing.T) {
	bad := stubOption("bad", domain.ModeRail, -100, 300)

	agg := NewAggregator(discardLogger(),
		&stubProvider{mode: domain.ModeRail, opts: []domain.TransportOption{
			bad,
			stubOption("good", domain.ModeRail, 4000, 300),
		}},
	)

	opts, err := agg.GetOptions(context.Background(), locA, locB, depart, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 || opts[0].ID != "good" {
		t.Fatalf("invalid option not filtered: %+v", opts)
	}
}

func TestGetOptionsRejectsInvalidLocations(t *testing.T) {
	agg := NewAggregator(discardLogger())

	_, err := agg.GetOptions(context.Background(), domain.Location{}, locB, depart, "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = agg.GetOptions(context.Background(), locA, domain.Location{Code: "   "}, depart, "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
