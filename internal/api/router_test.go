package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-trip-planner/internal/adapters/providers"
	"group-trip-planner/internal/api/dto"
	"group-trip-planner/internal/api/handlers"
	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/ports"
	"group-trip-planner/internal/services"
)

// memoryPlanRepository keeps plan snapshots in memory for handler tests.
type memoryPlanRepository struct {
	mu    sync.Mutex
	plans map[string][]*domain.TransportPlan
}

func newMemoryPlanRepository() *memoryPlanRepository {
	return &memoryPlanRepository{plans: make(map[string][]*domain.TransportPlan)}
}

func (r *memoryPlanRepository) Save(ctx context.Context, plan *domain.TransportPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.EventID] = append(r.plans[plan.EventID], plan)
	return nil
}

func (r *memoryPlanRepository) Latest(ctx context.Context, eventID string) (*domain.TransportPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.plans[eventID]
	if len(stored) == 0 {
		return nil, ports.ErrPlanNotFound
	}
	return stored[len(stored)-1], nil
}

func newTestServer(t *testing.T) (http.Handler, *memoryPlanRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := providers.NewRandSource(1)

	aggregator := services.NewAggregator(logger, providers.All(rng, "EUR")...)
	planner := services.NewPlanner(aggregator, services.DefaultScoringConfig(), 4, "EUR", logger)
	repo := newMemoryPlanRepository()

	planHandler := &handlers.PlanHandler{
		Planner:              planner,
		Repo:                 repo,
		Logger:               logger,
		DefaultMaxGapMinutes: 30,
		Deadline:             10 * time.Second,
	}
	optionsHandler := &handlers.OptionsHandler{
		Aggregator: aggregator,
		Logger:     logger,
	}

	return NewRouter(logger, planHandler, optionsHandler), repo
}

func postPlan(t *testing.T, router http.Handler, body dto.BuildPlanRequest) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestBuildPlanEndpoint(t *testing.T) {
	router, repo := newTestServer(t)

	rec := postPlan(t, router, dto.BuildPlanRequest{
		EventID: "reunion-2026",
		Participants: map[string]dto.LocationDTO{
			"alice": {Code: "BER", Name: "Berlin"},
			"bob":   {Code: "AMS", Name: "Amsterdam"},
			"carol": {Code: "PRG", Name: "Prague"},
		},
		Destination:   dto.LocationDTO{Code: "VIE", Name: "Vienna"},
		TargetArrival: time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC),
		Objective:     "MINIMIZE_COST",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "reunion-2026", res.EventID)
	assert.Len(t, res.Routes, 3)
	assert.False(t, res.Partial)
	assert.Empty(t, res.Unresolved)
	assert.NotEmpty(t, res.Rendezvous)
	assert.Equal(t, "MINIMIZE_COST", res.Objective)

	var sum int64
	for _, r := range res.Routes {
		sum += r.TotalCostCents
		assert.Positive(t, r.TotalDurationMinutes)
	}
	assert.Equal(t, sum, res.TotalCostCents)

	// The run's snapshot must have been persisted.
	stored, err := repo.Latest(context.Background(), "reunion-2026")
	require.NoError(t, err)
	assert.Equal(t, res.TotalCostCents, stored.TotalCostCents)
}

func TestBuildPlanRejectsBadRequests(t *testing.T) {
	router, _ := newTestServer(t)

	valid := dto.BuildPlanRequest{
		Participants:  map[string]dto.LocationDTO{"p": {Code: "BER"}},
		Destination:   dto.LocationDTO{Code: "VIE"},
		TargetArrival: time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC),
		Objective:     "BALANCED",
	}

	t.Run("unknown objective", func(t *testing.T) {
		req := valid
		req.Objective = "FASTEST"
		rec := postPlan(t, router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank destination", func(t *testing.T) {
		req := valid
		req.Destination = dto.LocationDTO{}
		rec := postPlan(t, router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative max gap", func(t *testing.T) {
		req := valid
		req.MaxGapMinutes = -5
		rec := postPlan(t, router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{"evnt_id":"x"}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPlanEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := postPlan(t, router, dto.BuildPlanRequest{
		EventID: "offsite",
		Participants: map[string]dto.LocationDTO{
			"dana": {Code: "OSL", Name: "Oslo"},
		},
		Destination:   dto.LocationDTO{Code: "CPH", Name: "Copenhagen"},
		TargetArrival: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Objective:     "MINIMIZE_TIME",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/plans/offsite", nil))

	require.Equal(t, http.StatusOK, getRec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &res))
	assert.Equal(t, "offsite", res.EventID)
	assert.Len(t, res.Routes, 1)
}

func TestGetPlanNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/no-such-event", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOptionsEndpointWalkRule(t *testing.T) {
	router, _ := newTestServer(t)
	departure := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)

	// Same origin and destination: exactly one free walking option.
	url := fmt.Sprintf("/options?from=VIE&to=VIE&mode=WALK&departure=%s", departure)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Options, 1)
	assert.Equal(t, "WALK", res.Options[0].Mode)
	assert.Zero(t, res.Options[0].CostCents)

	// Distinct locations: walking is not offered at all.
	url = fmt.Sprintf("/options?from=BER&to=VIE&mode=WALK&departure=%s", departure)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Options)
}

func TestOptionsEndpointSortsByCost(t *testing.T) {
	router, _ := newTestServer(t)
	departure := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)

	url := fmt.Sprintf("/options?from=BER&to=VIE&departure=%s", departure)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Options)

	for i := 1; i < len(res.Options); i++ {
		assert.LessOrEqual(t, res.Options[i-1].CostCents, res.Options[i].CostCents)
	}
}

func TestOptionsEndpointRejectsBadParams(t *testing.T) {
	router, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/options?to=VIE", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/options?from=BER&to=VIE&mode=TELEPORT", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/options?from=BER&to=VIE&departure=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
